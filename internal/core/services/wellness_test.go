package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tally-cli/internal/adapters/driven/storage/memory"
	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

func newWellnessFixture() (*WellnessService, *memJournal[domain.CheckInEntry]) {
	journal := &memJournal[domain.CheckInEntry]{}
	svc := NewWellnessService(memory.NewSessionStore(), testCatalog(), journal)
	svc.SetClock(func() time.Time {
		return time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC)
	})
	return svc, journal
}

func TestWellnessService_LogActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("logs a catalog activity", func(t *testing.T) {
		svc, _ := newWellnessFixture()
		log, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "run", Quantity: 20})
		require.NoError(t, err)
		assert.Equal(t, "Running", log.Activity)
		assert.Equal(t, "minutes", log.Unit)
		assert.Equal(t, 20, log.Qty)
	})

	t.Run("repeat logs accumulate quantity", func(t *testing.T) {
		svc, _ := newWellnessFixture()
		_, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "run", Quantity: 20})
		require.NoError(t, err)

		log, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "run", Quantity: 20})
		require.NoError(t, err)
		assert.Equal(t, 40, log.Qty)
	})

	t.Run("unknown activity", func(t *testing.T) {
		svc, _ := newWellnessFixture()
		_, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "skydiving", Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		svc, _ := newWellnessFixture()
		_, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "run", Quantity: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
}

func TestWellnessService_RemoveActivity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWellnessFixture()

	log, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "run", Quantity: 20})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveActivity(ctx, "s1", log.ID))
	assert.ErrorIs(t, svc.RemoveActivity(ctx, "s1", log.ID), domain.ErrNotFound)
}

func TestWellnessService_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("commits the check-in and clears the logs", func(t *testing.T) {
		svc, journal := newWellnessFixture()
		_, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "run", Quantity: 30})
		require.NoError(t, err)
		_, err = svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "water", Quantity: 6})
		require.NoError(t, err)

		entry, err := svc.Commit(ctx, "s1", "good", "solid day")
		require.NoError(t, err)

		assert.NotEmpty(t, entry.CheckInID)
		assert.Equal(t, "2025-06-01T21:00:00Z", entry.Timestamp)
		assert.Equal(t, "good", entry.Mood)
		require.Len(t, entry.Activities, 2)
		assert.Equal(t, "run", entry.Activities[0].ActivityID)
		assert.Equal(t, 30, entry.Activities[0].Quantity)
		assert.Len(t, journal.entries, 1)

		// The next commit needs fresh logs.
		_, err = svc.Commit(ctx, "s1", "good", "")
		assert.ErrorIs(t, err, domain.ErrEmptyLedger)
	})

	t.Run("cannot commit with nothing logged", func(t *testing.T) {
		svc, journal := newWellnessFixture()
		_, err := svc.Commit(ctx, "s1", "fine", "")
		assert.ErrorIs(t, err, domain.ErrEmptyLedger)
		assert.Empty(t, journal.entries)
	})

	t.Run("consecutive commits append", func(t *testing.T) {
		svc, journal := newWellnessFixture()
		for i := 0; i < 2; i++ {
			_, err := svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "run", Quantity: 20})
			require.NoError(t, err)
			_, err = svc.Commit(ctx, "s1", "good", "")
			require.NoError(t, err)
		}
		assert.Len(t, journal.entries, 2, "check-ins are append-only")
	})
}

func TestWellnessService_LastCheckIn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWellnessFixture()

	_, err := svc.LastCheckIn(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.LogActivity(ctx, "s1", driving.ActivityParams{ActivityID: "water", Quantity: 8})
	require.NoError(t, err)
	committed, err := svc.Commit(ctx, "s1", "thirsty", "")
	require.NoError(t, err)

	last, err := svc.LastCheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, committed.CheckInID, last.CheckInID)
}
