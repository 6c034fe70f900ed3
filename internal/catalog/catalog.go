// internal/catalog/catalog.go
package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hearsay-games/hearsay/internal/models"
)

// Catalog is the static mapping from category to quote records. Categories
// are matched case-insensitively; records are validated once at construction.
type Catalog struct {
	categories []string
	byCategory map[string][]models.QuoteRecord
}

// New builds a catalog from the built-in quote set. It panics on invalid
// built-in data, since that is a programming error, not runtime input.
func New() *Catalog {
	c, err := NewFromRecords(builtinCategories, builtinQuotes)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in quotes: %v", err))
	}
	return c
}

// NewFromRecords builds a catalog from an explicit category list and quote
// map, validating every record. Category keys are lowercased internally.
func NewFromRecords(categories []string, quotes map[string][]models.QuoteRecord) (*Catalog, error) {
	c := &Catalog{
		categories: append([]string(nil), categories...),
		byCategory: make(map[string][]models.QuoteRecord, len(quotes)),
	}
	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[strings.ToLower(cat)] = true
	}
	for cat, records := range quotes {
		key := strings.ToLower(cat)
		if !known[key] {
			return nil, fmt.Errorf("quotes for unlisted category %q", cat)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("category %q has no quotes", cat)
		}
		for i := range records {
			if err := records[i].Validate(); err != nil {
				return nil, fmt.Errorf("category %q: %w", cat, err)
			}
		}
		c.byCategory[key] = records
	}
	for _, cat := range categories {
		if len(c.byCategory[strings.ToLower(cat)]) == 0 {
			return nil, fmt.Errorf("category %q has no quotes", cat)
		}
	}
	return c, nil
}

// Categories returns the display names of all categories in listing order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Has reports whether category exists, matching case-insensitively.
func (c *Catalog) Has(category string) bool {
	_, ok := c.byCategory[strings.ToLower(category)]
	return ok
}

// Select picks a quote for the category, choosing uniformly at random when a
// category holds more than one record. Unknown categories are an error; the
// caller decides whether that is an invalid payload or a bug.
func (c *Catalog) Select(category string) (models.QuoteRecord, error) {
	records, ok := c.byCategory[strings.ToLower(category)]
	if !ok {
		return models.QuoteRecord{}, fmt.Errorf("unknown category %q", category)
	}
	return records[rand.Intn(len(records))], nil
}

// Emoji returns the decorative emoji shown next to a category name, or ""
// for categories without one.
func Emoji(category string) string {
	switch strings.ToLower(category) {
	case "music":
		return "\U0001F3B5"
	case "politics":
		return "\U0001F3DB️"
	case "movies":
		return "\U0001F3AC"
	case "history":
		return "\U0001F4DC"
	case "sports":
		return "⚽"
	case "academia":
		return "\U0001F393"
	default:
		return ""
	}
}
