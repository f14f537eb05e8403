package driven

import (
	"context"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

// CatalogSource loads the static reference catalog. It is read exactly
// once at process start; the core never writes back.
type CatalogSource interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}
