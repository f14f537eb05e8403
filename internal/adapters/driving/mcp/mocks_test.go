package mcp

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	item  *domain.CatalogItem
	items []domain.CatalogItem
	err   error
}

func (m *mockCatalogService) Find(_ context.Context, _ string) (*domain.CatalogItem, error) {
	return m.item, m.err
}

func (m *mockCatalogService) Search(_ context.Context, _ string) ([]domain.CatalogItem, error) {
	return m.items, m.err
}

func (m *mockCatalogService) List(_ context.Context, _ string) ([]domain.CatalogItem, error) {
	return m.items, m.err
}

// mockCartService is a mock implementation of driving.CartService.
type mockCartService struct {
	line   *domain.CartLine
	view   *driving.CartView
	order  *domain.OrderEntry
	orders []domain.OrderEntry
	err    error

	gotSession string
	gotParams  driving.AddItemParams
}

func (m *mockCartService) AddItem(_ context.Context, sessionID string, params driving.AddItemParams) (*domain.CartLine, error) {
	m.gotSession = sessionID
	m.gotParams = params
	return m.line, m.err
}

func (m *mockCartService) RemoveItem(_ context.Context, _, _ string) (*domain.CartLine, error) {
	return m.line, m.err
}

func (m *mockCartService) UpdateQuantity(_ context.Context, _, _ string, _ int) error {
	return m.err
}

func (m *mockCartService) View(_ context.Context, _ string) (*driving.CartView, error) {
	return m.view, m.err
}

func (m *mockCartService) Checkout(_ context.Context, _ string, _ driving.CheckoutParams) (*domain.OrderEntry, error) {
	return m.order, m.err
}

func (m *mockCartService) Orders(_ context.Context) ([]domain.OrderEntry, error) {
	return m.orders, m.err
}

func (m *mockCartService) LastOrder(_ context.Context) (*domain.OrderEntry, error) {
	return m.order, m.err
}

// mockLeadService is a mock implementation of driving.LeadService.
type mockLeadService struct {
	lead  *domain.LeadEntry
	leads []domain.LeadEntry
	score int
	err   error
}

func (m *mockLeadService) Save(_ context.Context, _ string, _ domain.LeadDraft) (*domain.LeadEntry, error) {
	return m.lead, m.err
}

func (m *mockLeadService) Score(_ context.Context, _ domain.LeadDraft) (int, error) {
	return m.score, m.err
}

func (m *mockLeadService) Leads(_ context.Context) ([]domain.LeadEntry, error) {
	return m.leads, m.err
}

func (m *mockLeadService) LastLead(_ context.Context) (*domain.LeadEntry, error) {
	return m.lead, m.err
}

// mockVerificationService is a mock implementation of driving.VerificationService.
type mockVerificationService struct {
	question string
	result   *driving.VerificationResult
	detail   *driving.CaseDetailView
	entry    *domain.CaseEntry
	cases    []domain.CaseEntry
	err      error
}

func (m *mockVerificationService) Question(_ context.Context, _ string) (string, error) {
	return m.question, m.err
}

func (m *mockVerificationService) Verify(_ context.Context, _, _, _ string) (*driving.VerificationResult, error) {
	return m.result, m.err
}

func (m *mockVerificationService) Detail(_ context.Context, _ string) (*driving.CaseDetailView, error) {
	return m.detail, m.err
}

func (m *mockVerificationService) Resolve(_ context.Context, _ string, _ domain.CaseStatus, _ string) (*domain.CaseEntry, error) {
	return m.entry, m.err
}

func (m *mockVerificationService) Cases(_ context.Context) ([]domain.CaseEntry, error) {
	return m.cases, m.err
}

// mockGameService is a mock implementation of driving.GameService.
type mockGameService struct {
	round    *domain.GameRound
	session  *domain.GameSessionEntry
	sessions []domain.GameSessionEntry
	err      error
}

func (m *mockGameService) RecordRound(_ context.Context, _ string, _ driving.RoundParams) (*domain.GameRound, error) {
	return m.round, m.err
}

func (m *mockGameService) Finish(_ context.Context, _, _ string) (*domain.GameSessionEntry, error) {
	return m.session, m.err
}

func (m *mockGameService) Sessions(_ context.Context) ([]domain.GameSessionEntry, error) {
	return m.sessions, m.err
}

func (m *mockGameService) LastSession(_ context.Context) (*domain.GameSessionEntry, error) {
	return m.session, m.err
}

// mockWellnessService is a mock implementation of driving.WellnessService.
type mockWellnessService struct {
	log      *domain.WellnessLog
	checkin  *domain.CheckInEntry
	checkins []domain.CheckInEntry
	err      error

	gotParams driving.ActivityParams
}

func (m *mockWellnessService) LogActivity(_ context.Context, _ string, params driving.ActivityParams) (*domain.WellnessLog, error) {
	m.gotParams = params
	return m.log, m.err
}

func (m *mockWellnessService) RemoveActivity(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockWellnessService) Commit(_ context.Context, _, _, _ string) (*domain.CheckInEntry, error) {
	return m.checkin, m.err
}

func (m *mockWellnessService) CheckIns(_ context.Context) ([]domain.CheckInEntry, error) {
	return m.checkins, m.err
}

func (m *mockWellnessService) LastCheckIn(_ context.Context) (*domain.CheckInEntry, error) {
	return m.checkin, m.err
}

// testPorts returns a Ports with every required service mocked.
func testPorts() *Ports {
	return &Ports{
		Catalog:      &mockCatalogService{},
		Cart:         &mockCartService{},
		Lead:         &mockLeadService{},
		Verification: &mockVerificationService{},
	}
}
