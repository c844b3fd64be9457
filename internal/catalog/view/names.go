package view

import "github.com/tair/price-list/internal/catalog/domain"

// NoCategoryLabel is shown for products whose category id does not resolve
const NoCategoryLabel = "Tidak ada kategori"

// Resolver indexes a category snapshot by id
type Resolver struct {
	byID map[string]domain.Category
}

// NewResolver indexes categories; on duplicate ids the first one wins
func NewResolver(categories []domain.Category) *Resolver {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		if _, seen := byID[c.ID]; !seen {
			byID[c.ID] = c
		}
	}
	return &Resolver{byID: byID}
}

// Lookup returns the category with the given id
func (r *Resolver) Lookup(id string) (domain.Category, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Name returns "" for the Default sentinel, NoCategoryLabel for a dangling id,
// and the category name otherwise.
func (r *Resolver) Name(id string) string {
	c, ok := r.byID[id]
	switch {
	case !ok:
		return NoCategoryLabel
	case c.IsDefault():
		return ""
	default:
		return c.Name
	}
}

// SortKey is the string products are ordered by when sorting by category.
// Missing and Default categories both sort as "".
func (r *Resolver) SortKey(id string) string {
	c, ok := r.byID[id]
	if !ok || c.IsDefault() {
		return ""
	}
	return c.Name
}

// Icon resolves the icon of a product's category
func (r *Resolver) Icon(id string) Icon {
	c, ok := r.byID[id]
	if !ok {
		return CategoryIcon("")
	}
	return CategoryIcon(c.Icon)
}

// CategoryName resolves a single id against a category snapshot
func CategoryName(categories []domain.Category, id string) string {
	return NewResolver(categories).Name(id)
}
