package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
	"github.com/quill-labs/tally-cli/internal/logger"
)

// Ensure CartService implements the interface.
var _ driving.CartService = (*CartService)(nil)

// CartService manages session carts and the order checkout protocol.
type CartService struct {
	sessions driven.SessionStore
	catalog  *domain.Catalog
	orders   driven.Journal[domain.OrderEntry]
	now      func() time.Time
}

// NewCartService creates a new cart service.
func NewCartService(sessions driven.SessionStore, catalog *domain.Catalog, orders driven.Journal[domain.OrderEntry]) *CartService {
	return &CartService{
		sessions: sessions,
		catalog:  catalog,
		orders:   orders,
		now:      time.Now,
	}
}

// SetClock overrides the timestamp source. Only used by tests.
func (s *CartService) SetClock(now func() time.Time) {
	s.now = now
}

// AddItem validates the item against the catalog and adds it to the
// session's ledger. Adding the same item with the same options again
// accumulates quantity on the existing line.
func (s *CartService) AddItem(ctx context.Context, sessionID string, params driving.AddItemParams) (*domain.CartLine, error) {
	item, err := s.catalog.Find(params.ItemID)
	if err != nil {
		return nil, fmt.Errorf("catalog item %q: %w", params.ItemID, err)
	}
	if params.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidQuantity)
	}

	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	line := &domain.CartLine{
		ID:       domain.NewRecordID(),
		ItemID:   item.ID,
		Name:     item.Name,
		Category: item.Category,
		Brand:    item.Brand,
		Size:     params.Size,
		MilkID:   params.MilkID,
		ExtraIDs: params.ExtraIDs,
		Notes:    params.Notes,
		Qty:      params.Quantity,
		Price:    item.Price,
	}

	rec, err := ledger.Add(line)
	if err != nil {
		return nil, err
	}
	added := rec.(*domain.CartLine)
	logger.Debug("session %s: cart now holds %dx %s", sessionID, added.Qty, added.Name)
	return added, nil
}

// RemoveItem removes a cart line by record id.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, recordID string) (*domain.CartLine, error) {
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec, err := ledger.Get(recordID)
	if err != nil {
		return nil, err
	}
	line, ok := rec.(*domain.CartLine)
	if !ok {
		return nil, fmt.Errorf("record %s is not a cart line: %w", recordID, domain.ErrWrongKind)
	}
	if _, err := ledger.Remove(recordID); err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, recordID string, quantity int) error {
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return err
	}
	_, err = ledger.UpdateQuantity(recordID, quantity)
	return err
}

// View returns the current cart contents and total.
func (s *CartService) View(ctx context.Context, sessionID string) (*driving.CartView, error) {
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &driving.CartView{}
	for _, rec := range ledger.ListKind(domain.KindCartLine) {
		view.Lines = append(view.Lines, *rec.(*domain.CartLine))
	}
	view.Total, _ = ledger.Total().Float64()
	return view, nil
}

// Checkout finalizes the cart. Steps, in order: validate the ledger is
// non-empty, build the order snapshot with its computed total, append
// it to the order journal, then clear the ledger. The ledger is only
// cleared after the journal write succeeds.
func (s *CartService) Checkout(ctx context.Context, sessionID string, params driving.CheckoutParams) (*domain.OrderEntry, error) {
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := ledger.ListKind(domain.KindCartLine)
	if len(lines) == 0 {
		return nil, fmt.Errorf("cannot checkout: %w", domain.ErrEmptyLedger)
	}

	entry := domain.OrderEntry{
		OrderID:             uuid.NewString(),
		Timestamp:           domain.Timestamp(s.now()),
		CustomerName:        params.CustomerName,
		DeliveryAddress:     params.DeliveryAddress,
		Status:              "placed",
		SpecialInstructions: params.SpecialInstructions,
	}
	for _, rec := range lines {
		line := rec.(*domain.CartLine)
		price, _ := line.Price.Float64()
		total, _ := line.LineTotal().Float64()
		entry.Items = append(entry.Items, domain.OrderLine{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Size:     line.Size,
			MilkID:   line.MilkID,
			ExtraIDs: line.ExtraIDs,
			Notes:    line.Notes,
			Quantity: line.Qty,
			Price:    price,
			Total:    total,
		})
	}
	entry.TotalAmount, _ = ledger.Total().Float64()

	written, err := s.orders.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("committing order: %w", err)
	}

	ledger.Clear()
	logger.Info("order %s committed: %d items, total %.2f", written.OrderID, len(written.Items), written.TotalAmount)
	return &written, nil
}

// Orders returns all committed orders in append order.
func (s *CartService) Orders(ctx context.Context) ([]domain.OrderEntry, error) {
	return s.orders.LoadAll(ctx)
}

// LastOrder returns the most recently committed order.
func (s *CartService) LastOrder(ctx context.Context) (*domain.OrderEntry, error) {
	all, err := s.orders.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no orders yet: %w", domain.ErrNotFound)
	}
	return &all[len(all)-1], nil
}
