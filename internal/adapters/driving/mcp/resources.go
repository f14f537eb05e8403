package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for tally resources.
	uriScheme = "tally://"
)

// registerResources registers read-only journal views with the MCP
// server. Resources expose committed entries only; nothing here can
// see an open session ledger.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "The full product, menu and activity catalog",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "journal/orders",
		Name:        "orders",
		Description: "All committed orders, oldest first",
		MIMEType:    "application/json",
	}, s.handleOrdersResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "journal/leads",
		Name:        "leads",
		Description: "All committed sales leads, oldest first",
		MIMEType:    "application/json",
	}, s.handleLeadsResource)
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCatalogResource returns every catalog item.
func (s *Server) handleCatalogResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	items, err := s.ports.Catalog.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	infos := make([]CatalogItemOutput, len(items))
	for i := range items {
		infos[i] = catalogItemOutput(&items[i])
	}
	return resourceResult(req.Params.URI, infos)
}

// handleOrdersResource returns the order journal contents.
func (s *Server) handleOrdersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	orders, err := s.ports.Cart.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return resourceResult(req.Params.URI, orders)
}

// handleLeadsResource returns the lead journal contents.
func (s *Server) handleLeadsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	leads, err := s.ports.Lead.Leads(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return resourceResult(req.Params.URI, leads)
}
