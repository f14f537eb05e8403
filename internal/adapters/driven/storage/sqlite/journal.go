package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
)

// Journal is a SQLite-backed journal of one entry kind. All kinds
// share the journal_entries table, discriminated by the kind column.
type Journal[E domain.JournalEntry] struct {
	store *Store
	kind  string
}

// Compile-time port check (with an arbitrary entry type).
var _ driven.Journal[domain.OrderEntry] = (*Journal[domain.OrderEntry])(nil)

// NewJournal returns a journal view over the store for one entry kind
// ("orders", "leads", "cases", ...).
func NewJournal[E domain.JournalEntry](store *Store, kind string) *Journal[E] {
	return &Journal[E]{store: store, kind: kind}
}

// LoadAll returns every entry in append order. Undecodable rows are
// skipped rather than surfaced, mirroring the JSON journal's
// treat-corruption-as-empty policy at row granularity.
func (j *Journal[E]) LoadAll(ctx context.Context) ([]E, error) {
	rows, err := j.store.db.QueryContext(ctx,
		"SELECT payload FROM journal_entries WHERE kind = ? ORDER BY seq", j.kind)
	if err != nil {
		return nil, fmt.Errorf("%w: querying journal: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var entries []E
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: scanning journal row: %v", domain.ErrPersistence, err)
		}
		var entry E
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading journal rows: %v", domain.ErrPersistence, err)
	}
	return entries, nil
}

// Append adds the entry at the end of the journal.
func (j *Journal[E]) Append(ctx context.Context, entry E) (E, error) {
	var zero E
	payload, err := json.Marshal(entry)
	if err != nil {
		return zero, fmt.Errorf("%w: encoding entry: %v", domain.ErrPersistence, err)
	}
	_, err = j.store.db.ExecContext(ctx,
		"INSERT INTO journal_entries (kind, entry_key, payload) VALUES (?, ?, ?)",
		j.kind, entry.EntryKey(), string(payload))
	if err != nil {
		return zero, fmt.Errorf("%w: appending entry: %v", domain.ErrPersistence, err)
	}
	return entry, nil
}

// Upsert replaces the entry with the same key in a single transaction,
// or appends if no entry matches.
func (j *Journal[E]) Upsert(ctx context.Context, entry E) (E, error) {
	var zero E
	payload, err := json.Marshal(entry)
	if err != nil {
		return zero, fmt.Errorf("%w: encoding entry: %v", domain.ErrPersistence, err)
	}

	tx, err := j.store.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("%w: starting transaction: %v", domain.ErrPersistence, err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		"UPDATE journal_entries SET payload = ? WHERE kind = ? AND entry_key = ?",
		string(payload), j.kind, entry.EntryKey())
	if err != nil {
		return zero, fmt.Errorf("%w: updating entry: %v", domain.ErrPersistence, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return zero, fmt.Errorf("%w: checking update: %v", domain.ErrPersistence, err)
	}
	if affected == 0 {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO journal_entries (kind, entry_key, payload) VALUES (?, ?, ?)",
			j.kind, entry.EntryKey(), string(payload)); err != nil {
			return zero, fmt.Errorf("%w: inserting entry: %v", domain.ErrPersistence, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("%w: committing entry: %v", domain.ErrPersistence, err)
	}
	return entry, nil
}
