package driving

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// CatalogService resolves static reference data.
type CatalogService interface {
	// Find returns the catalog item with the given id.
	Find(ctx context.Context, id string) (*domain.CatalogItem, error)

	// Search performs a case-insensitive multi-term search.
	Search(ctx context.Context, query string) ([]domain.CatalogItem, error)

	// List returns items in a category; empty category means all.
	List(ctx context.Context, category string) ([]domain.CatalogItem, error)
}
