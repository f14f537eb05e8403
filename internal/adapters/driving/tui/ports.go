// Package tui provides an interactive terminal user interface for tally.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog resolves static reference data.
	Catalog driving.CatalogService

	// Cart exposes the committed order journal.
	Cart driving.CartService

	// Lead exposes the committed lead journal.
	Lead driving.LeadService

	// Verification exposes the case journal. Optional.
	Verification driving.VerificationService

	// Game exposes the game journal. Optional.
	Game driving.GameService

	// Wellness exposes the check-in journal. Optional.
	Wellness driving.WellnessService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Cart == nil {
		return ErrMissingCartService
	}
	if p.Lead == nil {
		return ErrMissingLeadService
	}
	return nil
}
