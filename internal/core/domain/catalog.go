package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogItem is a single entry in the static reference catalog.
// Items are loaded once at process start and never mutated afterwards.
type CatalogItem struct {
	// ID is the stable identifier used by ledger records.
	ID string `json:"id"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Category groups items (drink, milk, extra, grocery, mug, ...).
	Category string `json:"category"`

	// Brand is optional; empty for unbranded items.
	Brand string `json:"brand,omitempty"`

	// Price is the unit price. Zero for items without a price (e.g. sizes).
	Price decimal.Decimal `json:"price"`

	// Unit describes the sold quantity ("400g", "1L", "each").
	Unit string `json:"unit,omitempty"`

	// Keywords are extra search terms beyond name/category/brand.
	Keywords []string `json:"keywords,omitempty"`

	Description string `json:"description,omitempty"`
}

// Catalog is an immutable collection of catalog items.
// All lookups are read-only; a Catalog is safe for concurrent use.
type Catalog struct {
	items []CatalogItem
	byID  map[string]int
}

// NewCatalog builds a catalog from a slice of items.
// Later duplicates of an ID silently lose to the first occurrence.
func NewCatalog(items []CatalogItem) *Catalog {
	c := &Catalog{
		items: make([]CatalogItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, exists := c.byID[item.ID]; exists {
			continue
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Find returns the item with the given ID, or ErrNotFound.
func (c *Catalog) Find(id string) (*CatalogItem, error) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrNotFound
	}
	item := c.items[idx]
	return &item, nil
}

// List returns all items in the given category, in catalog order.
// An empty category returns every item.
func (c *Catalog) List(category string) []CatalogItem {
	if category == "" {
		out := make([]CatalogItem, len(c.items))
		copy(out, c.items)
		return out
	}
	want := normalizeTerm(category)
	var out []CatalogItem
	for _, item := range c.items {
		if normalizeTerm(item.Category) == want {
			out = append(out, item)
		}
	}
	return out
}

// Search performs a case-insensitive keyword search across name, category,
// brand, keywords and description. Every term in a multi-word query must
// match for a hit. Hyphens fold to spaces so "t-shirt" matches "tshirt",
// and simple plurals fold to the singular ("mugs" matches "mug").
func (c *Catalog) Search(query string) []CatalogItem {
	terms := strings.Fields(normalizeTerm(query))
	if len(terms) == 0 {
		return nil
	}

	var out []CatalogItem
	for _, item := range c.items {
		if matchesAll(item, terms) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll(item CatalogItem, terms []string) bool {
	var b strings.Builder
	b.WriteString(item.Name)
	b.WriteByte(' ')
	b.WriteString(item.Category)
	b.WriteByte(' ')
	b.WriteString(item.Brand)
	b.WriteByte(' ')
	b.WriteString(item.Description)
	for _, kw := range item.Keywords {
		b.WriteByte(' ')
		b.WriteString(kw)
	}
	haystack := normalizeTerm(b.String())

	for _, term := range terms {
		if !strings.Contains(haystack, singular(term)) {
			return false
		}
	}
	return true
}

// normalizeTerm lowercases and folds punctuation that users elide in speech.
func normalizeTerm(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ",", " ")
	return strings.TrimSpace(s)
}

// singular strips a trailing "s" from longer words ("mugs" -> "mug").
// Short words are left alone so "is"/"pbs" style terms do not collapse.
func singular(word string) string {
	if len(word) > 3 && strings.HasSuffix(word, "s") {
		return word[:len(word)-1]
	}
	return word
}
