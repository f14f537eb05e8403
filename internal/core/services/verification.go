package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
	"github.com/quill-labs/tally-cli/internal/logger"
)

// Ensure VerificationService implements the interface.
var _ driving.VerificationService = (*VerificationService)(nil)

// Challenge attempts are throttled per session so a caller cannot
// brute-force the security answer inside one conversation.
const (
	attemptInterval = 2 * time.Second
	attemptBurst    = 3
)

// verificationSession is the per-session state machine instance.
type verificationSession struct {
	state   domain.VerificationState
	caseID  string
	subject string
	limiter *rate.Limiter
}

// VerificationService gates disclosure of sensitive fraud case fields
// behind a single security-question challenge.
type VerificationService struct {
	sessions driven.SessionStore
	cases    driven.Journal[domain.CaseEntry]
	now      func() time.Time

	mu    sync.Mutex
	state map[string]*verificationSession
}

// NewVerificationService creates a new verification service.
func NewVerificationService(sessions driven.SessionStore, cases driven.Journal[domain.CaseEntry]) *VerificationService {
	return &VerificationService{
		sessions: sessions,
		cases:    cases,
		now:      time.Now,
		state:    make(map[string]*verificationSession),
	}
}

// SetClock overrides the timestamp source. Only used by tests.
func (s *VerificationService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *VerificationService) session(sessionID string) *verificationSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs, ok := s.state[sessionID]
	if !ok {
		vs = &verificationSession{
			state:   domain.VerificationUnverified,
			limiter: rate.NewLimiter(rate.Every(attemptInterval), attemptBurst),
		}
		s.state[sessionID] = vs
	}
	return vs
}

// Question returns the security question for the case matching the
// subject, without disclosing any transaction detail.
func (s *VerificationService) Question(ctx context.Context, subject string) (string, error) {
	entry, err := s.findPending(ctx, subject)
	if err != nil {
		return "", err
	}
	return entry.SecurityQuestion, nil
}

// Verify runs the security challenge for the session.
//
// The machine transitions unverified -> verified on a match, and
// unverified -> failed on a mismatch or unknown subject. A failed
// session may retry with a different subject; the failed case itself
// is not retried automatically.
func (s *VerificationService) Verify(ctx context.Context, sessionID, subject, answer string) (*driving.VerificationResult, error) {
	vs := s.session(sessionID)

	if vs.state == domain.VerificationVerified {
		return &driving.VerificationResult{State: vs.state, CaseID: vs.caseID, Subject: vs.subject}, nil
	}

	if !vs.limiter.Allow() {
		return nil, fmt.Errorf("%w: please wait before retrying", domain.ErrTooManyAttempts)
	}

	entry, err := s.findPending(ctx, subject)
	if err != nil {
		vs.state = domain.VerificationFailed
		logger.Warn("verification failed for %q: no matching case", subject)
		return &driving.VerificationResult{State: domain.VerificationFailed, Subject: subject}, nil
	}

	result := &driving.VerificationResult{
		CaseID:   entry.CaseID,
		Subject:  entry.Subject,
		Question: entry.SecurityQuestion,
	}

	if !entry.ChallengeMatches(answer) {
		vs.state = domain.VerificationFailed
		vs.caseID = entry.CaseID
		vs.subject = entry.Subject
		result.State = domain.VerificationFailed
		logger.Warn("verification failed for %q: wrong security answer", subject)
		return result, nil
	}

	vs.state = domain.VerificationVerified
	vs.caseID = entry.CaseID
	vs.subject = entry.Subject
	result.State = domain.VerificationVerified

	// Pin the case into the session ledger so the session carries an
	// explicit working record of the review.
	if ledger, lerr := s.sessions.Ledger(ctx, sessionID); lerr == nil {
		ledger.Add(&domain.CaseReview{ //nolint:errcheck
			ID:      domain.NewRecordID(),
			CaseID:  entry.CaseID,
			Subject: entry.Subject,
			Outcome: string(domain.CasePendingReview),
		})
	}

	logger.Info("session %s verified for case %s", sessionID, entry.CaseID)
	return result, nil
}

// Detail discloses the verified case's transaction detail. Before the
// session reaches the verified state this returns ErrNoActiveCase and
// no partial data.
func (s *VerificationService) Detail(ctx context.Context, sessionID string) (*driving.CaseDetailView, error) {
	vs := s.session(sessionID)
	if vs.state != domain.VerificationVerified {
		return nil, domain.ErrNoActiveCase
	}

	entry, err := s.findByID(ctx, vs.caseID)
	if err != nil {
		return nil, err
	}
	return &driving.CaseDetailView{
		CaseID:  entry.CaseID,
		Subject: entry.Subject,
		Status:  entry.Status,
		Detail:  entry.Detail(),
	}, nil
}

// Resolve writes the terminal outcome into the case journal as an
// update-in-place keyed by case id, and closes the session's case.
// A verified session may record confirmed_safe, confirmed_fraud or
// pending_review; a failed session may only record verification_failed.
func (s *VerificationService) Resolve(ctx context.Context, sessionID string, status domain.CaseStatus, note string) (*domain.CaseEntry, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown case status %q", domain.ErrValidation, status)
	}

	vs := s.session(sessionID)
	switch vs.state {
	case domain.VerificationVerified:
		if status == domain.CaseVerificationFailed {
			return nil, fmt.Errorf("%w: session is verified", domain.ErrValidation)
		}
	case domain.VerificationFailed:
		if vs.caseID == "" {
			return nil, domain.ErrNoActiveCase
		}
		if status != domain.CaseVerificationFailed {
			return nil, fmt.Errorf("%w: unverified session can only record verification_failed", domain.ErrValidation)
		}
	default:
		return nil, domain.ErrNoActiveCase
	}

	entry, err := s.findByID(ctx, vs.caseID)
	if err != nil {
		return nil, err
	}

	entry.Status = status
	entry.OutcomeNote = note
	entry.Timestamp = domain.Timestamp(s.now())

	written, err := s.cases.Upsert(ctx, *entry)
	if err != nil {
		return nil, fmt.Errorf("committing case outcome: %w", err)
	}

	// Mirror the outcome on the session's working record; the ledger
	// itself stays as-is, the logical case is simply closed.
	if ledger, lerr := s.sessions.Ledger(ctx, sessionID); lerr == nil {
		for _, rec := range ledger.ListKind(domain.KindCaseReview) {
			review := rec.(*domain.CaseReview)
			if review.CaseID == written.CaseID {
				review.Outcome = string(status)
				review.Note = note
			}
		}
	}

	logger.Info("case %s resolved: %s", written.CaseID, written.Status)
	return &written, nil
}

// Cases returns all cases currently in the case journal.
func (s *VerificationService) Cases(ctx context.Context) ([]domain.CaseEntry, error) {
	return s.cases.LoadAll(ctx)
}

func (s *VerificationService) findPending(ctx context.Context, subject string) (*domain.CaseEntry, error) {
	all, err := s.cases.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].MatchesSubject(subject) && all[i].Status == domain.CasePendingReview {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("no pending case for %q: %w", subject, domain.ErrNotFound)
}

func (s *VerificationService) findByID(ctx context.Context, caseID string) (*domain.CaseEntry, error) {
	all, err := s.cases.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].CaseID == caseID {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("case %s: %w", caseID, domain.ErrNotFound)
}
