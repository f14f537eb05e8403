package driven

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// SessionStore tracks the entity ledger of each conversational session.
// Ledgers are created on first use and destroyed at session end or on
// finalize-then-clear.
type SessionStore interface {
	// Ledger returns the ledger for the session, creating it if needed.
	Ledger(ctx context.Context, sessionID string) (*domain.Ledger, error)

	// End destroys the session's ledger, if any.
	End(ctx context.Context, sessionID string) error
}
