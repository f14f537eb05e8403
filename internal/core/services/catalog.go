package services

import (
	"context"
	"fmt"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
	"github.com/quill-labs/tally-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService resolves lookups over the static catalog.
// The catalog is loaded once at construction and never mutated.
type CatalogService struct {
	catalog *domain.Catalog
}

// NewCatalogService loads the catalog from the source.
func NewCatalogService(ctx context.Context, source driven.CatalogSource) (*CatalogService, error) {
	catalog, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	logger.Debug("catalog loaded: %d items", catalog.Len())
	return &CatalogService{catalog: catalog}, nil
}

// Catalog exposes the loaded catalog to sibling services.
func (s *CatalogService) Catalog() *domain.Catalog {
	return s.catalog
}

// Find returns the catalog item with the given id.
func (s *CatalogService) Find(_ context.Context, id string) (*domain.CatalogItem, error) {
	item, err := s.catalog.Find(id)
	if err != nil {
		return nil, fmt.Errorf("catalog item %q: %w", id, err)
	}
	return item, nil
}

// Search performs a case-insensitive multi-term search.
func (s *CatalogService) Search(_ context.Context, query string) ([]domain.CatalogItem, error) {
	results := s.catalog.Search(query)
	logger.Debug("catalog search %q: %d hits", query, len(results))
	return results, nil
}

// List returns items in a category; empty category means all.
func (s *CatalogService) List(_ context.Context, category string) ([]domain.CatalogItem, error) {
	return s.catalog.List(category), nil
}
