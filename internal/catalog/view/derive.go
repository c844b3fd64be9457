// Package view derives the visible, ordered product list and its statistics from a catalog
// snapshot and a filter state. Everything here is pure: inputs are never mutated and equal
// inputs always produce equal outputs.
package view

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tair/price-list/internal/catalog/domain"
)

// View is the result of one derivation
type View struct {
	Products []domain.Product `json:"products"`
	Stats    Stats            `json:"stats"`
}

// Engine derives views using a fixed collation locale
type Engine struct {
	locale language.Tag
}

// NewEngine returns an engine that orders names by the rules of locale
func NewEngine(locale language.Tag) *Engine {
	return &Engine{locale: locale}
}

// ParseLocale parses a BCP 47 tag, falling back to Indonesian
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Indonesian
	}
	return tag
}

var defaultEngine = NewEngine(language.Indonesian)

// Derive runs the default Indonesian-collation engine
func Derive(products []domain.Product, categories []domain.Category, filters domain.FilterState) View {
	return defaultEngine.Derive(products, categories, filters)
}

// Derive filters, sorts, and summarises products.
// The statistics have two scopes: Visible covers the returned list, the rest the full input.
func (e *Engine) Derive(products []domain.Product, categories []domain.Category, filters domain.FilterState) View {
	filters = filters.Normalize()
	resolver := NewResolver(categories)
	needle := strings.ToLower(filters.Search)

	visible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if filters.CategoryID != "" && p.CategoryID != filters.CategoryID {
			continue
		}
		if !filters.PriceRange.Contains(p.Price) {
			continue
		}
		visible = append(visible, p)
	}

	slices.SortStableFunc(visible, e.comparator(resolver, filters.SortField, filters.SortOrder))

	return View{
		Products: visible,
		Stats:    computeStats(products, visible),
	}
}

// comparator builds the ordering for field. Collators keep per-call buffers, so each
// derivation gets its own.
func (e *Engine) comparator(resolver *Resolver, field domain.SortField, order domain.SortOrder) func(a, b domain.Product) int {
	var compare func(a, b domain.Product) int

	switch field {
	case domain.SortByName:
		col := collate.New(e.locale)
		compare = func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		}
	case domain.SortByPrice:
		compare = func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case domain.SortByCategory:
		col := collate.New(e.locale)
		compare = func(a, b domain.Product) int {
			return col.CompareString(resolver.SortKey(a.CategoryID), resolver.SortKey(b.CategoryID))
		}
	default:
		compare = func(a, b domain.Product) int {
			return a.CreationTime().Compare(b.CreationTime())
		}
	}

	if order == domain.Descending {
		return func(a, b domain.Product) int {
			return -compare(a, b)
		}
	}
	return compare
}
