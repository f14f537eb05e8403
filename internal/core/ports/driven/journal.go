package driven

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// Journal is the durable append log for one entry kind. The journal is
// the only persistent state; session ledgers are always disposable.
//
// Implementations must recover from a corrupt or missing backing file
// by treating it as empty, and must rewrite atomically: a failed write
// never leaves a partially written file behind.
type Journal[E domain.JournalEntry] interface {
	// LoadAll returns every entry in append order.
	LoadAll(ctx context.Context) ([]E, error)

	// Append adds the entry at the end of the journal.
	Append(ctx context.Context, entry E) (E, error)

	// Upsert replaces the entry whose key matches entry.EntryKey(),
	// or appends if no entry matches. Repeated finalization of the
	// same logical case is therefore idempotent.
	Upsert(ctx context.Context, entry E) (E, error)
}
