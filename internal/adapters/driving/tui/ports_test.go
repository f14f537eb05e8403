package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

// MockCatalogService implements driving.CatalogService for testing.
type MockCatalogService struct {
	FindFunc   func(ctx context.Context, id string) (*domain.CatalogItem, error)
	SearchFunc func(ctx context.Context, query string) ([]domain.CatalogItem, error)
	ListFunc   func(ctx context.Context, category string) ([]domain.CatalogItem, error)
}

func (m *MockCatalogService) Find(ctx context.Context, id string) (*domain.CatalogItem, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCatalogService) Search(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockCatalogService) List(ctx context.Context, category string) ([]domain.CatalogItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, nil
}

// MockCartService implements driving.CartService for testing.
type MockCartService struct {
	OrdersFunc func(ctx context.Context) ([]domain.OrderEntry, error)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, params driving.AddItemParams) (*domain.CartLine, error) {
	return nil, nil
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID, recordID string) (*domain.CartLine, error) {
	return nil, nil
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID, recordID string, quantity int) error {
	return nil
}

func (m *MockCartService) View(ctx context.Context, sessionID string) (*driving.CartView, error) {
	return nil, nil
}

func (m *MockCartService) Checkout(ctx context.Context, sessionID string, params driving.CheckoutParams) (*domain.OrderEntry, error) {
	return nil, nil
}

func (m *MockCartService) Orders(ctx context.Context) ([]domain.OrderEntry, error) {
	if m.OrdersFunc != nil {
		return m.OrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockCartService) LastOrder(ctx context.Context) (*domain.OrderEntry, error) {
	return nil, nil
}

// MockLeadService implements driving.LeadService for testing.
type MockLeadService struct {
	LeadsFunc func(ctx context.Context) ([]domain.LeadEntry, error)
}

func (m *MockLeadService) Save(ctx context.Context, sessionID string, draft domain.LeadDraft) (*domain.LeadEntry, error) {
	return nil, nil
}

func (m *MockLeadService) Score(ctx context.Context, draft domain.LeadDraft) (int, error) {
	return 0, nil
}

func (m *MockLeadService) Leads(ctx context.Context) ([]domain.LeadEntry, error) {
	if m.LeadsFunc != nil {
		return m.LeadsFunc(ctx)
	}
	return nil, nil
}

func (m *MockLeadService) LastLead(ctx context.Context) (*domain.LeadEntry, error) {
	return nil, nil
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Catalog: &MockCatalogService{},
		Cart:    &MockCartService{},
		Lead:    &MockLeadService{},
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingCatalog(t *testing.T) {
	ports := &Ports{
		Catalog: nil,
		Cart:    &MockCartService{},
		Lead:    &MockLeadService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCatalogService)
}

func TestPorts_Validate_MissingCart(t *testing.T) {
	ports := &Ports{
		Catalog: &MockCatalogService{},
		Cart:    nil,
		Lead:    &MockLeadService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCartService)
}

func TestPorts_Validate_MissingLead(t *testing.T) {
	ports := &Ports{
		Catalog: &MockCatalogService{},
		Cart:    &MockCartService{},
		Lead:    nil,
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingLeadService)
}
