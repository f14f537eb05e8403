package driving

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// ActivityParams describes one health activity to log.
type ActivityParams struct {
	ActivityID string
	Quantity   int
	Notes      string
}

// WellnessService accumulates daily health logs and commits check-ins.
type WellnessService interface {
	// LogActivity validates the activity against the catalog and adds
	// it to the session's ledger; repeat logs accumulate quantity.
	LogActivity(ctx context.Context, sessionID string, params ActivityParams) (*domain.WellnessLog, error)

	// RemoveActivity removes a logged activity by record id.
	RemoveActivity(ctx context.Context, sessionID, recordID string) error

	// Commit finalizes the check-in: requires at least one logged
	// activity, appends a check-in entry, then clears the ledger.
	Commit(ctx context.Context, sessionID, mood, summary string) (*domain.CheckInEntry, error)

	// CheckIns returns all committed check-ins in append order.
	CheckIns(ctx context.Context) ([]domain.CheckInEntry, error)

	// LastCheckIn returns the most recently committed check-in.
	LastCheckIn(ctx context.Context) (*domain.CheckInEntry, error)
}
