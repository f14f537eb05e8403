package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tally-cli/internal/adapters/driven/storage/memory"
	"github.com/quill-labs/tally-cli/internal/core/domain"
)

func newVerificationFixture() (*VerificationService, *memJournal[domain.CaseEntry], *memory.SessionStore) {
	journal := &memJournal[domain.CaseEntry]{entries: []domain.CaseEntry{pendingCase()}}
	sessions := memory.NewSessionStore()
	svc := NewVerificationService(sessions, journal)
	svc.SetClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	})
	return svc, journal, sessions
}

func TestVerificationService_Question(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newVerificationFixture()

	t.Run("returns the challenge question", func(t *testing.T) {
		q, err := svc.Question(ctx, "john doe")
		require.NoError(t, err)
		assert.Equal(t, "What is the name of your first pet?", q)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := svc.Question(ctx, "jane roe")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVerificationService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("correct answer verifies the session", func(t *testing.T) {
		svc, _, sessions := newVerificationFixture()
		result, err := svc.Verify(ctx, "s1", "John Doe", "Fluffy")
		require.NoError(t, err)

		assert.Equal(t, domain.VerificationVerified, result.State)
		assert.Equal(t, "FRAUD_001", result.CaseID)

		// The verified case is pinned into the session ledger.
		ledger, err := sessions.Ledger(ctx, "s1")
		require.NoError(t, err)
		reviews := ledger.ListKind(domain.KindCaseReview)
		require.Len(t, reviews, 1)
		assert.Equal(t, "FRAUD_001", reviews[0].(*domain.CaseReview).CaseID)
	})

	t.Run("answer match is trimmed and case-insensitive", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		result, err := svc.Verify(ctx, "s1", "  JOHN DOE ", " fluffy  ")
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationVerified, result.State)
	})

	t.Run("wrong answer fails the session", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		result, err := svc.Verify(ctx, "s1", "John Doe", "rex")
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationFailed, result.State)
		assert.Equal(t, "FRAUD_001", result.CaseID)
	})

	t.Run("unknown subject fails without a case", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		result, err := svc.Verify(ctx, "s1", "Jane Roe", "anything")
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationFailed, result.State)
		assert.Empty(t, result.CaseID)
	})

	t.Run("verified session short-circuits further attempts", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		_, err := svc.Verify(ctx, "s1", "John Doe", "fluffy")
		require.NoError(t, err)

		// A later call with a wrong answer does not demote the session.
		result, err := svc.Verify(ctx, "s1", "John Doe", "rex")
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationVerified, result.State)
	})

	t.Run("attempts are rate limited per session", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		for i := 0; i < attemptBurst; i++ {
			_, err := svc.Verify(ctx, "s1", "John Doe", "rex")
			require.NoError(t, err)
		}
		_, err := svc.Verify(ctx, "s1", "John Doe", "rex")
		assert.ErrorIs(t, err, domain.ErrTooManyAttempts)

		// Other sessions have their own budget.
		_, err = svc.Verify(ctx, "s2", "John Doe", "rex")
		assert.NoError(t, err)
	})

	t.Run("resolved cases no longer match", func(t *testing.T) {
		svc, journal, _ := newVerificationFixture()
		journal.entries[0].Status = domain.CaseConfirmedSafe

		result, err := svc.Verify(ctx, "s1", "John Doe", "fluffy")
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationFailed, result.State)
	})
}

func TestVerificationService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("gated before verification", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		_, err := svc.Detail(ctx, "s1")
		assert.ErrorIs(t, err, domain.ErrNoActiveCase)
	})

	t.Run("gated after a failed attempt", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		_, err := svc.Verify(ctx, "s1", "John Doe", "rex")
		require.NoError(t, err)

		_, err = svc.Detail(ctx, "s1")
		assert.ErrorIs(t, err, domain.ErrNoActiveCase)
	})

	t.Run("disclosed once verified", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		_, err := svc.Verify(ctx, "s1", "John Doe", "fluffy")
		require.NoError(t, err)

		view, err := svc.Detail(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "FRAUD_001", view.CaseID)
		assert.Equal(t, "4242", view.Detail.CardEnding)
		assert.Equal(t, 2500.0, view.Detail.TransactionAmount)
	})
}

func TestVerificationService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("verified session records the outcome in place", func(t *testing.T) {
		svc, journal, sessions := newVerificationFixture()
		_, err := svc.Verify(ctx, "s1", "John Doe", "fluffy")
		require.NoError(t, err)

		entry, err := svc.Resolve(ctx, "s1", domain.CaseConfirmedFraud, "customer did not recognize the charge")
		require.NoError(t, err)

		assert.Equal(t, domain.CaseConfirmedFraud, entry.Status)
		assert.Equal(t, "2025-06-01T12:00:00Z", entry.Timestamp)

		// Updated in place, not appended.
		require.Len(t, journal.entries, 1)
		assert.Equal(t, domain.CaseConfirmedFraud, journal.entries[0].Status)

		// The session's working record mirrors the outcome.
		ledger, err := sessions.Ledger(ctx, "s1")
		require.NoError(t, err)
		reviews := ledger.ListKind(domain.KindCaseReview)
		require.Len(t, reviews, 1)
		assert.Equal(t, string(domain.CaseConfirmedFraud), reviews[0].(*domain.CaseReview).Outcome)
	})

	t.Run("verified session cannot record verification_failed", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		_, err := svc.Verify(ctx, "s1", "John Doe", "fluffy")
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, "s1", domain.CaseVerificationFailed, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("failed session records only verification_failed", func(t *testing.T) {
		svc, journal, _ := newVerificationFixture()
		_, err := svc.Verify(ctx, "s1", "John Doe", "rex")
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, "s1", domain.CaseConfirmedSafe, "")
		assert.ErrorIs(t, err, domain.ErrValidation)

		entry, err := svc.Resolve(ctx, "s1", domain.CaseVerificationFailed, "could not verify caller")
		require.NoError(t, err)
		assert.Equal(t, domain.CaseVerificationFailed, entry.Status)
		assert.Equal(t, domain.CaseVerificationFailed, journal.entries[0].Status)
	})

	t.Run("unverified session has no case to resolve", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		_, err := svc.Resolve(ctx, "s1", domain.CaseConfirmedSafe, "")
		assert.ErrorIs(t, err, domain.ErrNoActiveCase)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc, _, _ := newVerificationFixture()
		_, err := svc.Resolve(ctx, "s1", domain.CaseStatus("sorted"), "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
