package driving

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// LeadService captures and commits sales leads.
type LeadService interface {
	// Save validates the draft, computes its qualification score and
	// appends the scored lead to the lead journal.
	Save(ctx context.Context, sessionID string, draft domain.LeadDraft) (*domain.LeadEntry, error)

	// Score computes the qualification score without committing.
	Score(ctx context.Context, draft domain.LeadDraft) (int, error)

	// Leads returns all committed leads in append order.
	Leads(ctx context.Context) ([]domain.LeadEntry, error)

	// LastLead returns the most recently committed lead.
	LastLead(ctx context.Context) (*domain.LeadEntry, error)
}
