package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	// Catalog
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_catalog",
		Description: "Search the product and menu catalog by keywords",
	}, s.handleSearchCatalog)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_catalog_item",
		Description: "Look up a single catalog item by its id",
	}, s.handleGetCatalogItem)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_catalog",
		Description: "List catalog items, optionally filtered by category",
	}, s.handleListCatalog)

	// Cart and checkout
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_to_cart",
		Description: "Add a catalog item to the session's cart",
	}, s.handleAddToCart)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_from_cart",
		Description: "Remove a line from the session's cart",
	}, s.handleRemoveFromCart)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_quantity",
		Description: "Change the quantity of a cart line; zero removes it",
	}, s.handleUpdateQuantity)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "view_cart",
		Description: "Show the session's cart contents and total",
	}, s.handleViewCart)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "checkout",
		Description: "Finalize the cart into a committed order and clear it",
	}, s.handleCheckout)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_last_order",
		Description: "Return the most recently committed order",
	}, s.handleGetLastOrder)

	// Leads
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_lead",
		Description: "Validate, score and commit a sales lead",
	}, s.handleSaveLead)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_last_lead",
		Description: "Return the most recently committed lead",
	}, s.handleGetLastLead)

	// Fraud case verification
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "verify_identity",
		Description: "Verify the caller against their case's security question",
	}, s.handleVerifyIdentity)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_case_details",
		Description: "Disclose the verified case's transaction details",
	}, s.handleGetCaseDetails)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_case",
		Description: "Record the case outcome (safe, fraud, or failed verification)",
	}, s.handleResolveCase)

	// Improv game
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "record_round",
		Description: "Record a completed improv round for the session",
	}, s.handleRecordRound)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "finish_game",
		Description: "Commit the session's improv game to the journal",
	}, s.handleFinishGame)

	// Wellness check-ins
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "record_checkin",
		Description: "Log a health activity for today's check-in",
	}, s.handleRecordCheckIn)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "commit_checkins",
		Description: "Commit today's check-in with all logged activities",
	}, s.handleCommitCheckIns)
}

// CatalogItemOutput is the wire shape of one catalog item.
type CatalogItemOutput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty"`
	Description string  `json:"description,omitempty"`
}

func catalogItemOutput(item *domain.CatalogItem) CatalogItemOutput {
	price, _ := item.Price.Float64()
	return CatalogItemOutput{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Brand:       item.Brand,
		Price:       price,
		Unit:        item.Unit,
		Description: item.Description,
	}
}

// SearchCatalogInput is the input schema for the search_catalog tool.
type SearchCatalogInput struct {
	Query string `json:"query" jsonschema:"keywords to match against item names, categories, brands and keywords"`
}

// SearchCatalogOutput is the output schema for the search_catalog tool.
type SearchCatalogOutput struct {
	OpStatus
	Results []CatalogItemOutput `json:"results"`
	Count   int                 `json:"count"`
}

func (s *Server) handleSearchCatalog(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchCatalogInput,
) (*mcp.CallToolResult, SearchCatalogOutput, error) {
	items, err := s.ports.Catalog.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchCatalogOutput{}, err
	}

	output := SearchCatalogOutput{OpStatus: ok(), Count: len(items)}
	for i := range items {
		output.Results = append(output.Results, catalogItemOutput(&items[i]))
	}
	if len(items) == 0 {
		output.Message = fmt.Sprintf("no catalog items match %q", input.Query)
	}
	return nil, output, nil
}

// GetCatalogItemInput is the input schema for the get_catalog_item tool.
type GetCatalogItemInput struct {
	ID string `json:"id" jsonschema:"the catalog item id"`
}

// GetCatalogItemOutput is the output schema for the get_catalog_item tool.
type GetCatalogItemOutput struct {
	OpStatus
	Item *CatalogItemOutput `json:"item,omitempty"`
}

func (s *Server) handleGetCatalogItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetCatalogItemInput,
) (*mcp.CallToolResult, GetCatalogItemOutput, error) {
	item, err := s.ports.Catalog.Find(ctx, input.ID)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, GetCatalogItemOutput{OpStatus: status}, nil
		}
		return nil, GetCatalogItemOutput{}, err
	}
	out := catalogItemOutput(item)
	return nil, GetCatalogItemOutput{OpStatus: ok(), Item: &out}, nil
}

// ListCatalogInput is the input schema for the list_catalog tool.
type ListCatalogInput struct {
	Category string `json:"category,omitempty" jsonschema:"category filter; empty lists everything"`
}

// ListCatalogOutput is the output schema for the list_catalog tool.
type ListCatalogOutput struct {
	OpStatus
	Results []CatalogItemOutput `json:"results"`
	Count   int                 `json:"count"`
}

func (s *Server) handleListCatalog(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListCatalogInput,
) (*mcp.CallToolResult, ListCatalogOutput, error) {
	items, err := s.ports.Catalog.List(ctx, input.Category)
	if err != nil {
		return nil, ListCatalogOutput{}, err
	}

	output := ListCatalogOutput{OpStatus: ok(), Count: len(items)}
	for i := range items {
		output.Results = append(output.Results, catalogItemOutput(&items[i]))
	}
	return nil, output, nil
}
