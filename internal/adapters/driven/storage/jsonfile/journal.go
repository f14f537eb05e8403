// Package jsonfile implements the durable journal as a single JSON
// array on disk, matching the persisted log format consumed by other
// tooling: one file per entry kind, pretty-printed, append at the end,
// update-in-place by entry key.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/logger"
)

// Journal is a file-backed journal of one entry kind.
//
// Writes are read-modify-write over the whole file. The rewrite is
// atomic (temp file, then rename) so a failed write never leaves a
// partially written file. There is no cross-process locking: two
// processes finalizing against the same file can race and the last
// writer wins. Use the sqlite journal where that matters.
type Journal[E domain.JournalEntry] struct {
	mu   sync.Mutex
	path string
}

// Compile-time port check (with an arbitrary entry type).
var _ driven.Journal[domain.OrderEntry] = (*Journal[domain.OrderEntry])(nil)

// NewJournal creates a journal backed by the file at path. The parent
// directory is created if needed. If seed is non-empty and the file
// does not exist yet, the seed entries are written as the initial
// journal contents.
func NewJournal[E domain.JournalEntry](path string, seed ...E) (*Journal[E], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	j := &Journal[E]{path: path}

	if len(seed) > 0 {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := j.write(seed); err != nil {
				return nil, err
			}
			logger.Debug("journal %s seeded with %d entries", filepath.Base(path), len(seed))
		}
	}
	return j, nil
}

// Path returns the backing file path.
func (j *Journal[E]) Path() string {
	return j.path
}

// LoadAll returns every entry in append order. A missing or corrupt
// file is treated as an empty journal and never surfaced as an error.
func (j *Journal[E]) LoadAll(_ context.Context) ([]E, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.load(), nil
}

// Append adds the entry at the end of the journal.
func (j *Journal[E]) Append(_ context.Context, entry E) (E, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries := append(j.load(), entry)
	if err := j.write(entries); err != nil {
		var zero E
		return zero, err
	}
	return entry, nil
}

// Upsert replaces the entry whose key matches entry.EntryKey(), or
// appends if none matches.
func (j *Journal[E]) Upsert(_ context.Context, entry E) (E, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries := j.load()
	replaced := false
	for i := range entries {
		if entries[i].EntryKey() == entry.EntryKey() {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	if err := j.write(entries); err != nil {
		var zero E
		return zero, err
	}
	return entry, nil
}

// load reads and decodes the whole file (caller must hold the lock).
func (j *Journal[E]) load() []E {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("journal %s unreadable, treating as empty: %v", j.path, err)
		}
		return nil
	}

	var entries []E
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn("journal %s corrupt, treating as empty: %v", j.path, err)
		return nil
	}
	return entries
}

// write re-encodes the whole journal and replaces the file atomically
// (caller must hold the lock).
func (j *Journal[E]) write(entries []E) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encoding journal: %v", domain.ErrPersistence, err)
	}

	dir := filepath.Dir(j.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(j.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", domain.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("%w: writing journal: %v", domain.ErrPersistence, errors.Join(werr, cerr))
	}

	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("%w: setting journal permissions: %v", domain.ErrPersistence, err)
	}
	if err := os.Rename(tmpName, j.path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("%w: replacing journal: %v", domain.ErrPersistence, err)
	}
	return nil
}
