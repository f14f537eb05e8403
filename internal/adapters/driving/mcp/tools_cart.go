package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

// CartLineOutput is the wire shape of one cart line.
type CartLineOutput struct {
	ID       string   `json:"id"`
	ItemID   string   `json:"item_id"`
	Name     string   `json:"name"`
	Size     string   `json:"size,omitempty"`
	MilkID   string   `json:"milk_id,omitempty"`
	ExtraIDs []string `json:"extra_ids,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Total    float64  `json:"total"`
}

func cartLineOutput(line *domain.CartLine) CartLineOutput {
	price, _ := line.Price.Float64()
	total, _ := line.LineTotal().Float64()
	return CartLineOutput{
		ID:       line.ID,
		ItemID:   line.ItemID,
		Name:     line.Name,
		Size:     line.Size,
		MilkID:   line.MilkID,
		ExtraIDs: line.ExtraIDs,
		Notes:    line.Notes,
		Quantity: line.Qty,
		Price:    price,
		Total:    total,
	}
}

// AddToCartInput is the input schema for the add_to_cart tool.
type AddToCartInput struct {
	ItemID   string   `json:"item_id" jsonschema:"catalog id of the item to add"`
	Quantity int      `json:"quantity,omitempty" jsonschema:"how many to add; defaults to 1"`
	Size     string   `json:"size,omitempty" jsonschema:"size id for drinks (s, m, l)"`
	MilkID   string   `json:"milk_id,omitempty" jsonschema:"milk option id for drinks"`
	ExtraIDs []string `json:"extra_ids,omitempty" jsonschema:"extra option ids (syrups, shots)"`
	Notes    string   `json:"notes,omitempty" jsonschema:"free-form preparation notes"`
	Session  string   `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// AddToCartOutput is the output schema for the add_to_cart tool.
type AddToCartOutput struct {
	OpStatus
	Line *CartLineOutput `json:"line,omitempty"`
}

func (s *Server) handleAddToCart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddToCartInput,
) (*mcp.CallToolResult, AddToCartOutput, error) {
	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	line, err := s.ports.Cart.AddItem(ctx, session(input.Session), driving.AddItemParams{
		ItemID:   input.ItemID,
		Quantity: qty,
		Size:     input.Size,
		MilkID:   input.MilkID,
		ExtraIDs: input.ExtraIDs,
		Notes:    input.Notes,
	})
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, AddToCartOutput{OpStatus: status}, nil
		}
		return nil, AddToCartOutput{}, err
	}

	out := cartLineOutput(line)
	status := okMsg(fmt.Sprintf("%s x%d in cart", line.Name, line.Qty))
	return nil, AddToCartOutput{OpStatus: status, Line: &out}, nil
}

// RemoveFromCartInput is the input schema for the remove_from_cart tool.
type RemoveFromCartInput struct {
	LineID  string `json:"line_id" jsonschema:"id of the cart line to remove"`
	Session string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// RemoveFromCartOutput is the output schema for the remove_from_cart tool.
type RemoveFromCartOutput struct {
	OpStatus
	Removed *CartLineOutput `json:"removed,omitempty"`
}

func (s *Server) handleRemoveFromCart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveFromCartInput,
) (*mcp.CallToolResult, RemoveFromCartOutput, error) {
	line, err := s.ports.Cart.RemoveItem(ctx, session(input.Session), input.LineID)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, RemoveFromCartOutput{OpStatus: status}, nil
		}
		return nil, RemoveFromCartOutput{}, err
	}

	out := cartLineOutput(line)
	status := okMsg(fmt.Sprintf("removed %s from cart", line.Name))
	return nil, RemoveFromCartOutput{OpStatus: status, Removed: &out}, nil
}

// UpdateQuantityInput is the input schema for the update_quantity tool.
type UpdateQuantityInput struct {
	LineID   string `json:"line_id" jsonschema:"id of the cart line to update"`
	Quantity int    `json:"quantity" jsonschema:"new quantity; zero or less removes the line"`
	Session  string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// UpdateQuantityOutput is the output schema for the update_quantity tool.
type UpdateQuantityOutput struct {
	OpStatus
}

func (s *Server) handleUpdateQuantity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateQuantityInput,
) (*mcp.CallToolResult, UpdateQuantityOutput, error) {
	err := s.ports.Cart.UpdateQuantity(ctx, session(input.Session), input.LineID, input.Quantity)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, UpdateQuantityOutput{OpStatus: status}, nil
		}
		return nil, UpdateQuantityOutput{}, err
	}
	if input.Quantity <= 0 {
		return nil, UpdateQuantityOutput{OpStatus: okMsg("line removed")}, nil
	}
	return nil, UpdateQuantityOutput{OpStatus: ok()}, nil
}

// ViewCartInput is the input schema for the view_cart tool.
type ViewCartInput struct {
	Session string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// ViewCartOutput is the output schema for the view_cart tool.
type ViewCartOutput struct {
	OpStatus
	Lines []CartLineOutput `json:"lines"`
	Total float64          `json:"total"`
}

func (s *Server) handleViewCart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ViewCartInput,
) (*mcp.CallToolResult, ViewCartOutput, error) {
	view, err := s.ports.Cart.View(ctx, session(input.Session))
	if err != nil {
		return nil, ViewCartOutput{}, err
	}

	output := ViewCartOutput{OpStatus: ok(), Total: view.Total}
	for i := range view.Lines {
		output.Lines = append(output.Lines, cartLineOutput(&view.Lines[i]))
	}
	if len(view.Lines) == 0 {
		output.Message = "the cart is empty"
	}
	return nil, output, nil
}

// CheckoutInput is the input schema for the checkout tool.
type CheckoutInput struct {
	CustomerName        string `json:"customer_name,omitempty" jsonschema:"name to attach to the order"`
	DeliveryAddress     string `json:"delivery_address,omitempty" jsonschema:"delivery address, if any"`
	SpecialInstructions string `json:"special_instructions,omitempty" jsonschema:"order-level instructions"`
	Session             string `json:"session_id,omitempty" jsonschema:"conversation session id"`
}

// CheckoutOutput is the output schema for the checkout tool.
type CheckoutOutput struct {
	OpStatus
	Order *domain.OrderEntry `json:"order,omitempty"`
}

func (s *Server) handleCheckout(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckoutInput,
) (*mcp.CallToolResult, CheckoutOutput, error) {
	order, err := s.ports.Cart.Checkout(ctx, session(input.Session), driving.CheckoutParams{
		CustomerName:        input.CustomerName,
		DeliveryAddress:     input.DeliveryAddress,
		SpecialInstructions: input.SpecialInstructions,
	})
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, CheckoutOutput{OpStatus: status}, nil
		}
		return nil, CheckoutOutput{}, err
	}

	status := okMsg(fmt.Sprintf("order %s placed, total %.2f", order.OrderID, order.TotalAmount))
	return nil, CheckoutOutput{OpStatus: status, Order: order}, nil
}

// GetLastOrderInput is the input schema for the get_last_order tool.
type GetLastOrderInput struct{}

// GetLastOrderOutput is the output schema for the get_last_order tool.
type GetLastOrderOutput struct {
	OpStatus
	Order *domain.OrderEntry `json:"order,omitempty"`
}

func (s *Server) handleGetLastOrder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetLastOrderInput,
) (*mcp.CallToolResult, GetLastOrderOutput, error) {
	order, err := s.ports.Cart.LastOrder(ctx)
	if err != nil {
		if status, handled := failure(err); handled {
			return nil, GetLastOrderOutput{OpStatus: status}, nil
		}
		return nil, GetLastOrderOutput{}, err
	}
	return nil, GetLastOrderOutput{OpStatus: ok(), Order: order}, nil
}
