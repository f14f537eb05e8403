package driving

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// AddItemParams describes an item to add to a session's cart.
type AddItemParams struct {
	ItemID   string
	Quantity int
	Size     string
	MilkID   string
	ExtraIDs []string
	Notes    string
}

// CheckoutParams carries the optional customer details attached to a
// committed order.
type CheckoutParams struct {
	CustomerName        string
	DeliveryAddress     string
	SpecialInstructions string
}

// CartView is a read-only snapshot of a session's cart.
type CartView struct {
	Lines []domain.CartLine
	Total float64
}

// CartService manages a session's cart and the order checkout protocol.
type CartService interface {
	// AddItem validates the item against the catalog and adds it to
	// the session's ledger, accumulating quantity on repeat adds.
	AddItem(ctx context.Context, sessionID string, params AddItemParams) (*domain.CartLine, error)

	// RemoveItem removes a cart line by record id.
	RemoveItem(ctx context.Context, sessionID, recordID string) (*domain.CartLine, error)

	// UpdateQuantity sets a line's quantity; zero or less removes it.
	UpdateQuantity(ctx context.Context, sessionID, recordID string, quantity int) error

	// View returns the current cart contents and total.
	View(ctx context.Context, sessionID string) (*CartView, error)

	// Checkout finalizes the cart: validates it is non-empty, commits
	// an order entry to the journal, then clears the ledger.
	Checkout(ctx context.Context, sessionID string, params CheckoutParams) (*domain.OrderEntry, error)

	// Orders returns all committed orders in append order.
	Orders(ctx context.Context) ([]domain.OrderEntry, error)

	// LastOrder returns the most recently committed order.
	LastOrder(ctx context.Context) (*domain.OrderEntry, error)
}
