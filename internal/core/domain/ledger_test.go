package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(id, itemID, size string, qty int, price float64) *CartLine {
	return &CartLine{
		ID:     id,
		ItemID: itemID,
		Name:   itemID,
		Size:   size,
		Qty:    qty,
		Price:  decimal.NewFromFloat(price),
	}
}

func TestLedger_Add(t *testing.T) {
	t.Run("inserts and preserves order", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
		require.NoError(t, err)
		_, err = l.Add(cartLine("r2", "espresso", "", 1, 2.50))
		require.NoError(t, err)

		recs := l.List()
		require.Len(t, recs, 2)
		assert.Equal(t, "r1", recs[0].RecordID())
		assert.Equal(t, "r2", recs[1].RecordID())
	})

	t.Run("same natural key accumulates quantity", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
		require.NoError(t, err)

		rec, err := l.Add(cartLine("r2", "latte", "m", 2, 4.50))
		require.NoError(t, err)

		line := rec.(*CartLine)
		assert.Equal(t, "r1", line.ID, "the original record survives")
		assert.Equal(t, 3, line.Qty)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("different options do not merge", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
		require.NoError(t, err)
		_, err = l.Add(cartLine("r2", "latte", "l", 1, 4.50))
		require.NoError(t, err)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("rejects duplicate record id", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
		require.NoError(t, err)
		_, err = l.Add(cartLine("r1", "espresso", "", 1, 2.50))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("r1", "latte", "m", 0, 4.50))
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("rejects missing id", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("", "latte", "m", 1, 4.50))
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestLedger_Remove(t *testing.T) {
	l := NewLedger()
	_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
	require.NoError(t, err)

	rec, err := l.Remove("r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", rec.RecordID())
	assert.True(t, l.IsEmpty())

	_, err = l.Remove("r1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedger_UpdateQuantity(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
		require.NoError(t, err)

		rec, err := l.UpdateQuantity("r1", 5)
		require.NoError(t, err)
		assert.Equal(t, 5, rec.(*CartLine).Qty)
	})

	t.Run("zero removes the record", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(cartLine("r1", "latte", "m", 2, 4.50))
		require.NoError(t, err)

		_, err = l.UpdateQuantity("r1", 0)
		require.NoError(t, err)
		assert.True(t, l.IsEmpty())
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		l := NewLedger()
		_, err := l.UpdateQuantity("missing", 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-quantified record is ErrWrongKind", func(t *testing.T) {
		l := NewLedger()
		_, err := l.Add(&LeadDraft{ID: "r1", Name: "A", Email: "a@b.co", UseCase: "x", Timeline: "now"})
		require.NoError(t, err)

		_, err = l.UpdateQuantity("r1", 2)
		assert.ErrorIs(t, err, ErrWrongKind)
	})
}

func TestLedger_Total(t *testing.T) {
	l := NewLedger()
	_, err := l.Add(cartLine("r1", "latte", "m", 2, 4.50))
	require.NoError(t, err)
	_, err = l.Add(cartLine("r2", "vanilla", "", 3, 0.50))
	require.NoError(t, err)

	assert.True(t, l.Total().Equal(decimal.NewFromFloat(10.50)),
		"got %s", l.Total())
}

func TestLedger_ListKind(t *testing.T) {
	l := NewLedger()
	_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
	require.NoError(t, err)
	_, err = l.Add(&GameRound{ID: "r2", Round: 1, Scenario: "airport"})
	require.NoError(t, err)

	assert.Len(t, l.ListKind(KindCartLine), 1)
	assert.Len(t, l.ListKind(KindGameRound), 1)
	assert.Empty(t, l.ListKind(KindWellnessLog))
}

func TestLedger_Clear(t *testing.T) {
	l := NewLedger()
	_, err := l.Add(cartLine("r1", "latte", "m", 1, 4.50))
	require.NoError(t, err)

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.List())

	// A cleared ledger accepts the old id again.
	_, err = l.Add(cartLine("r1", "latte", "m", 1, 4.50))
	assert.NoError(t, err)
}

func TestWellnessLog_Accumulation(t *testing.T) {
	l := NewLedger()
	_, err := l.Add(&WellnessLog{ID: "w1", ActivityID: "run", Activity: "Running", Unit: "minutes", Qty: 20})
	require.NoError(t, err)

	rec, err := l.Add(&WellnessLog{ID: "w2", ActivityID: "run", Activity: "Running", Unit: "minutes", Qty: 20})
	require.NoError(t, err)

	assert.Equal(t, 40, rec.(*WellnessLog).Qty)
	assert.Equal(t, 1, l.Len())
}
