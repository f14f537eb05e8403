package driving

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// RoundParams describes one completed improv round.
type RoundParams struct {
	Scenario      string
	Improvisation string
	HostReaction  string
}

// GameService accumulates improv game rounds and commits finished
// sessions to the game journal, keyed by session id.
type GameService interface {
	// RecordRound appends a round to the session's ledger.
	RecordRound(ctx context.Context, sessionID string, params RoundParams) (*domain.GameRound, error)

	// Finish commits the session. Finishing the same session again
	// (early exit, then close) replaces the committed entry in place.
	Finish(ctx context.Context, sessionID, playerName string) (*domain.GameSessionEntry, error)

	// Sessions returns all committed game sessions.
	Sessions(ctx context.Context) ([]domain.GameSessionEntry, error)

	// LastSession returns the most recently committed session.
	LastSession(ctx context.Context) (*domain.GameSessionEntry, error)
}
