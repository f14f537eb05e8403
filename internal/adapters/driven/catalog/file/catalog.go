// Package file loads the static reference catalog from a TOML file.
// A default catalog is embedded in the binary so the tool works out of
// the box; a user-supplied file replaces it wholesale.
package file

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/logger"
)

//go:embed catalog.toml
var defaultCatalog []byte

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source loads the catalog once at startup. The core never writes back.
type Source struct {
	path string
}

// NewSource creates a catalog source. An empty path means the embedded
// default catalog.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// itemRecord is the on-disk item shape. Prices are plain TOML floats;
// they are converted to decimals on load.
type itemRecord struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Category    string   `toml:"category"`
	Brand       string   `toml:"brand"`
	Price       float64  `toml:"price"`
	Unit        string   `toml:"unit"`
	Keywords    []string `toml:"keywords"`
	Description string   `toml:"description"`
}

type catalogFile struct {
	Items []itemRecord `toml:"items"`
}

// Load reads and parses the catalog.
func (s *Source) Load(_ context.Context) (*domain.Catalog, error) {
	data := defaultCatalog
	if s.path != "" {
		fileData, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file %s: %w", s.path, err)
		}
		data = fileData
		logger.Debug("catalog loaded from %s", s.path)
	}

	var parsed catalogFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("catalog has no items: %w", domain.ErrValidation)
	}

	items := make([]domain.CatalogItem, 0, len(parsed.Items))
	for _, rec := range parsed.Items {
		if rec.ID == "" || rec.Name == "" {
			return nil, fmt.Errorf("catalog item missing id or name: %w", domain.ErrValidation)
		}
		items = append(items, domain.CatalogItem{
			ID:          rec.ID,
			Name:        rec.Name,
			Category:    rec.Category,
			Brand:       rec.Brand,
			Price:       decimal.NewFromFloat(rec.Price),
			Unit:        rec.Unit,
			Keywords:    rec.Keywords,
			Description: rec.Description,
		})
	}
	return domain.NewCatalog(items), nil
}
