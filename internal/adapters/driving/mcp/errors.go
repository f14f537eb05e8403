// Package mcp provides an MCP (Model Context Protocol) server adapter
// for tally. It exposes the session ledger, catalog, checkout, lead,
// verification and game/wellness operations as tools a conversational
// front end can invoke.
package mcp

import (
	"errors"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// Port wiring errors.
var (
	ErrMissingCatalogService      = errors.New("mcp: catalog service is required")
	ErrMissingCartService         = errors.New("mcp: cart service is required")
	ErrMissingLeadService         = errors.New("mcp: lead service is required")
	ErrMissingVerificationService = errors.New("mcp: verification service is required")
)

// OpStatus is embedded in every tool output. Expected domain failures
// (not found, empty cart, failed challenge) surface here as a short
// message the agent can speak back to the user; they are never raised
// as protocol errors.
type OpStatus struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func ok() OpStatus {
	return OpStatus{OK: true}
}

func okMsg(msg string) OpStatus {
	return OpStatus{OK: true, Message: msg}
}

// failure maps an expected domain error to a conversational status.
// The bool is false for unexpected errors, which callers propagate as
// real tool errors.
func failure(err error) (OpStatus, bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyLedger),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrWrongKind),
		errors.Is(err, domain.ErrNoActiveCase),
		errors.Is(err, domain.ErrTooManyAttempts):
		return OpStatus{OK: false, Message: err.Error()}, true
	}
	return OpStatus{}, false
}
