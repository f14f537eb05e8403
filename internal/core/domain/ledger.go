package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger is the per-session mutable store of in-progress records.
// It preserves insertion order so committed snapshots are reproducible.
//
// A ledger is single-writer by design: the conversational front end
// issues one tool invocation at a time per session, and every operation
// runs to completion before the next is accepted. Cross-session safety
// is the session store's concern, not the ledger's.
type Ledger struct {
	records map[string]Record
	order   []string
}

// NewLedger creates an empty session ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make(map[string]Record)}
}

// Add inserts a record, assigning position at the end of the ledger.
// For quantity-bearing kinds, a record with the same natural key as an
// existing entry accumulates quantity instead of inserting a duplicate;
// the surviving record is returned in either case.
func (l *Ledger) Add(rec Record) (Record, error) {
	if rec == nil || rec.RecordID() == "" {
		return nil, fmt.Errorf("%w: record must have an id", ErrValidation)
	}
	if _, exists := l.records[rec.RecordID()]; exists {
		return nil, fmt.Errorf("%w: duplicate record id %s", ErrValidation, rec.RecordID())
	}

	if q, ok := rec.(Quantified); ok {
		if q.Quantity() <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidQuantity)
		}
		if existing := l.findByNaturalKey(q); existing != nil {
			existing.SetQuantity(existing.Quantity() + q.Quantity())
			return existing, nil
		}
	}

	l.records[rec.RecordID()] = rec
	l.order = append(l.order, rec.RecordID())
	return rec, nil
}

// Remove deletes a record by id and returns it.
func (l *Ledger) Remove(id string) (Record, error) {
	rec, ok := l.records[id]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	delete(l.records, id)
	for i, rid := range l.order {
		if rid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return rec, nil
}

// UpdateQuantity sets the quantity of a quantity-bearing record.
// A quantity of zero or less removes the record.
func (l *Ledger) UpdateQuantity(id string, quantity int) (Record, error) {
	rec, ok := l.records[id]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	q, ok := rec.(Quantified)
	if !ok {
		return nil, fmt.Errorf("record %s carries no quantity: %w", id, ErrWrongKind)
	}
	if quantity <= 0 {
		return l.Remove(id)
	}
	q.SetQuantity(quantity)
	return rec, nil
}

// Get returns a record by id.
func (l *Ledger) Get(id string) (Record, error) {
	rec, ok := l.records[id]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}
	return rec, nil
}

// List returns all records in insertion order.
func (l *Ledger) List() []Record {
	out := make([]Record, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.records[id])
	}
	return out
}

// ListKind returns records of one kind, in insertion order.
func (l *Ledger) ListKind(kind RecordKind) []Record {
	var out []Record
	for _, id := range l.order {
		if rec := l.records[id]; rec.Kind() == kind {
			out = append(out, rec)
		}
	}
	return out
}

// Total sums price*quantity over the quantity-bearing records.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, id := range l.order {
		if q, ok := l.records[id].(Quantified); ok {
			line := q.UnitPrice().Mul(decimal.NewFromInt(int64(q.Quantity())))
			total = total.Add(line)
		}
	}
	return total
}

// IsEmpty reports whether the ledger holds no records.
func (l *Ledger) IsEmpty() bool {
	return len(l.records) == 0
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Clear removes every record.
func (l *Ledger) Clear() {
	l.records = make(map[string]Record)
	l.order = nil
}

func (l *Ledger) findByNaturalKey(q Quantified) Quantified {
	key := q.NaturalKey()
	for _, id := range l.order {
		existing, ok := l.records[id].(Quantified)
		if ok && existing.Kind() == q.Kind() && existing.NaturalKey() == key {
			return existing
		}
	}
	return nil
}
