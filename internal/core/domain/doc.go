// Package domain defines the core business entities for tally.
//
// This package is part of the hexagonal architecture's innermost layer
// and defines the fundamental types:
//
//   - CatalogItem / Catalog: static, read-only reference data
//   - Record and its variants: mutable per-session ledger records
//   - Ledger: the insertion-ordered session store of records
//   - JournalEntry kinds: finalized snapshots committed to a journal
//   - CaseEntry: a durable fraud case with its verification fields
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It only imports the standard
// library plus two value-type dependencies (google/uuid for record ids,
// shopspring/decimal for money). All other packages depend on domain,
// never the reverse.
package domain
