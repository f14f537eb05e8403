package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// memJournal is an in-memory driven.Journal for tests.
type memJournal[E domain.JournalEntry] struct {
	entries []E
	err     error
}

func (m *memJournal[E]) LoadAll(_ context.Context) ([]E, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]E, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memJournal[E]) Append(_ context.Context, entry E) (E, error) {
	if m.err != nil {
		var zero E
		return zero, m.err
	}
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *memJournal[E]) Upsert(_ context.Context, entry E) (E, error) {
	if m.err != nil {
		var zero E
		return zero, m.err
	}
	for i := range m.entries {
		if m.entries[i].EntryKey() == entry.EntryKey() {
			m.entries[i] = entry
			return entry, nil
		}
	}
	m.entries = append(m.entries, entry)
	return entry, nil
}

// testCatalog is the fixture catalog shared by the service tests.
func testCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.CatalogItem{
		{ID: "latte", Name: "Latte", Category: "drink", Price: decimal.NewFromFloat(4.50)},
		{ID: "espresso", Name: "Espresso", Category: "drink", Price: decimal.NewFromFloat(2.50)},
		{ID: "vanilla", Name: "Vanilla Syrup", Category: "extra", Price: decimal.NewFromFloat(0.50)},
		{ID: "run", Name: "Running", Category: "activity", Unit: "minutes"},
		{ID: "water", Name: "Water", Category: "activity", Unit: "glasses"},
	})
}

// pendingCase returns a fresh pending fraud case fixture.
func pendingCase() domain.CaseEntry {
	return domain.CaseEntry{
		CaseID:             "FRAUD_001",
		Subject:            "John Doe",
		SecurityIdentifier: "12345",
		CardEnding:         "4242",
		TransactionName:    "Luxury Watches Intl",
		TransactionAmount:  2500,
		SecurityQuestion:   "What is the name of your first pet?",
		SecurityAnswer:     "fluffy",
		Status:             domain.CasePendingReview,
	}
}
