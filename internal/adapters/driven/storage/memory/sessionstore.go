// Package memory provides in-memory implementations of driven ports.
// Session ledgers are always in-memory: they are disposable by design
// and never survive the process.
package memory

import (
	"context"
	"sync"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory registry of session ledgers.
// The store itself is safe for concurrent sessions; each individual
// ledger remains single-writer per the session contract.
type SessionStore struct {
	mu      sync.RWMutex
	ledgers map[string]*domain.Ledger
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		ledgers: make(map[string]*domain.Ledger),
	}
}

// Ledger returns the ledger for the session, creating it if needed.
func (s *SessionStore) Ledger(_ context.Context, sessionID string) (*domain.Ledger, error) {
	s.mu.RLock()
	ledger, ok := s.ledgers[sessionID]
	s.mu.RUnlock()
	if ok {
		return ledger, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ledger, ok = s.ledgers[sessionID]; ok {
		return ledger, nil
	}
	ledger = domain.NewLedger()
	s.ledgers[sessionID] = ledger
	return ledger, nil
}

// End destroys the session's ledger, if any.
func (s *SessionStore) End(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ledgers, sessionID)
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ledgers)
}
