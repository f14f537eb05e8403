package driving

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// VerificationResult is the outcome of a challenge attempt.
type VerificationResult struct {
	State   domain.VerificationState
	CaseID  string
	Subject string

	// Question is the security question for the matched case. It is
	// populated on both success and failure so the front end can
	// re-ask; the stored answer is never included.
	Question string
}

// CaseDetailView pairs the case identity with its sensitive detail.
type CaseDetailView struct {
	CaseID  string
	Subject string
	Status  domain.CaseStatus
	Detail  domain.SensitiveDetail
}

// VerificationService gates disclosure of sensitive fraud case fields
// behind a single security-question challenge.
type VerificationService interface {
	// Question returns the security question for the case matching
	// the subject, without disclosing any transaction detail.
	Question(ctx context.Context, subject string) (string, error)

	// Verify runs the challenge for the session. A match moves the
	// session to verified and pins the case reference; any mismatch
	// is terminal failure for that case.
	Verify(ctx context.Context, sessionID, subject, answer string) (*VerificationResult, error)

	// Detail discloses the verified case's transaction detail.
	// Returns domain.ErrNoActiveCase unless the session is verified.
	Detail(ctx context.Context, sessionID string) (*CaseDetailView, error)

	// Resolve writes the terminal outcome into the case journal as an
	// update-in-place keyed by case id, and closes the session's case.
	Resolve(ctx context.Context, sessionID string, status domain.CaseStatus, note string) (*domain.CaseEntry, error)

	// Cases returns all cases currently in the case journal.
	Cases(ctx context.Context) ([]domain.CaseEntry, error)
}
