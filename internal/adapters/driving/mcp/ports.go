package mcp

import (
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog resolves static reference data.
	Catalog driving.CatalogService

	// Cart manages session carts and checkout.
	Cart driving.CartService

	// Lead captures and scores sales leads.
	Lead driving.LeadService

	// Verification gates fraud case disclosure.
	Verification driving.VerificationService

	// Game accumulates improv game rounds. Optional.
	Game driving.GameService

	// Wellness accumulates daily health logs. Optional.
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
	if p.Verification == nil {
		return ErrMissingVerificationService
	}
	// Game and Wellness are optional; their tools report unavailable.
	return nil
}
