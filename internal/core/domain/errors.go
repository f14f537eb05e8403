package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a precondition or input constraint was violated.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyLedger indicates a finalize was attempted on an empty ledger.
	ErrEmptyLedger = errors.New("ledger is empty")

	// ErrInvalidQuantity indicates a malformed quantity value.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrVerificationFailed indicates the security challenge did not match.
	// This is a terminal state of the verification machine, not a fault.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrNoActiveCase indicates sensitive case data was requested before
	// the session reached the verified state.
	ErrNoActiveCase = errors.New("no active case")

	// ErrTooManyAttempts indicates the verification attempt limit was hit.
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// ErrPersistence indicates the journal file could not be rewritten.
	// The on-disk file is never left partially written.
	ErrPersistence = errors.New("persistence failure")

	// ErrWrongKind indicates a record of an unexpected kind was supplied
	// to an operation that only accepts a specific variant.
	ErrWrongKind = errors.New("wrong record kind")
)
