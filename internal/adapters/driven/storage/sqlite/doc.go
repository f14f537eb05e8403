// Package sqlite provides a SQLite-backed implementation of the
// journal port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. All journal
// kinds share one database connection and one table, discriminated by
// a kind column.
//
// # Why SQLite
//
// The flat JSON journals are read-modify-write over a whole file with
// no locking, so two processes finalizing concurrently can lose one
// write. SQLite's per-key transactional upsert closes that race; pick
// this backend via the settings file when multiple agent processes
// share one journal.
//
// # Schema
//
// The database schema is managed through versioned migrations stored
// in the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.tally/data/journal.db
package sqlite
