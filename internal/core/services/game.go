package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
	"github.com/quill-labs/tally-cli/internal/logger"
)

// Ensure GameService implements the interface.
var _ driving.GameService = (*GameService)(nil)

// MaxRounds is the round budget of one improv game session.
const MaxRounds = 3

// GameService accumulates improv rounds per session and commits
// finished sessions to the game journal keyed by session id.
type GameService struct {
	sessions driven.SessionStore
	games    driven.Journal[domain.GameSessionEntry]
	now      func() time.Time

	mu     sync.Mutex
	starts map[string]string // session id -> start timestamp
}

// NewGameService creates a new game service.
func NewGameService(sessions driven.SessionStore, games driven.Journal[domain.GameSessionEntry]) *GameService {
	return &GameService{
		sessions: sessions,
		games:    games,
		now:      time.Now,
		starts:   make(map[string]string),
	}
}

// SetClock overrides the timestamp source. Only used by tests.
func (s *GameService) SetClock(now func() time.Time) {
	s.now = now
}

// RecordRound appends a round to the session's ledger.
func (s *GameService) RecordRound(ctx context.Context, sessionID string, params driving.RoundParams) (*domain.GameRound, error) {
	if params.Scenario == "" {
		return nil, fmt.Errorf("%w: scenario is required", domain.ErrValidation)
	}

	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	played := len(ledger.ListKind(domain.KindGameRound))
	if played >= MaxRounds {
		return nil, fmt.Errorf("%w: all %d rounds already played", domain.ErrValidation, MaxRounds)
	}

	s.mu.Lock()
	if _, ok := s.starts[sessionID]; !ok {
		s.starts[sessionID] = domain.Timestamp(s.now())
	}
	s.mu.Unlock()

	round := &domain.GameRound{
		ID:            domain.NewRecordID(),
		Round:         played + 1,
		Scenario:      params.Scenario,
		Improvisation: params.Improvisation,
		HostReaction:  params.HostReaction,
	}
	if _, err := ledger.Add(round); err != nil {
		return nil, err
	}
	logger.Debug("session %s: round %d recorded", sessionID, round.Round)
	return round, nil
}

// Finish commits the session to the game journal. Finishing the same
// session again (an early exit followed by the final close) replaces
// the committed entry in place rather than duplicating it. The ledger
// keeps its rounds; only the logical session is closed.
func (s *GameService) Finish(ctx context.Context, sessionID, playerName string) (*domain.GameSessionEntry, error) {
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rounds := ledger.ListKind(domain.KindGameRound)
	if len(rounds) == 0 {
		return nil, fmt.Errorf("cannot finish a game with no rounds: %w", domain.ErrEmptyLedger)
	}

	s.mu.Lock()
	start, ok := s.starts[sessionID]
	s.mu.Unlock()
	if !ok {
		start = domain.Timestamp(s.now())
	}

	entry := domain.GameSessionEntry{
		SessionID:   sessionID,
		PlayerName:  playerName,
		StartTime:   start,
		EndTime:     domain.Timestamp(s.now()),
		TotalRounds: len(rounds),
		MaxRounds:   MaxRounds,
	}
	for _, rec := range rounds {
		round := rec.(*domain.GameRound)
		entry.Rounds = append(entry.Rounds, domain.GameRoundInfo{
			Round:         round.Round,
			Scenario:      round.Scenario,
			Improvisation: round.Improvisation,
			HostReaction:  round.HostReaction,
		})
	}

	written, err := s.games.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("committing game session: %w", err)
	}

	logger.Info("game session %s committed: %d/%d rounds", written.SessionID, written.TotalRounds, written.MaxRounds)
	return &written, nil
}

// Sessions returns all committed game sessions.
func (s *GameService) Sessions(ctx context.Context) ([]domain.GameSessionEntry, error) {
	return s.games.LoadAll(ctx)
}

// LastSession returns the most recently committed session.
func (s *GameService) LastSession(ctx context.Context) (*domain.GameSessionEntry, error) {
	all, err := s.games.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no game sessions yet: %w", domain.ErrNotFound)
	}
	return &all[len(all)-1], nil
}
