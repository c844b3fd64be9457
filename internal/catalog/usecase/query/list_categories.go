package query

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

// ListCategoriesQuery represents the query to list categories
type ListCategoriesQuery struct {
	IncludeDefault bool
}

// CategorySummary is a category with its display icon and product count
type CategorySummary struct {
	domain.Category
	Display      view.Icon `json:"display"`
	ProductCount int       `json:"productCount"`
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	catalog domain.Catalog
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(catalog domain.Catalog) *ListCategoriesHandler {
	return &ListCategoriesHandler{catalog: catalog}
}

// Handle executes the list categories query. The Default category is hidden unless asked for.
func (h *ListCategoriesHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategorySummary, error) {
	snap, err := h.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	counts := make(map[string]int, len(snap.Categories))
	for _, p := range snap.Products {
		counts[p.CategoryID]++
	}

	summaries := make([]CategorySummary, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		if c.IsDefault() && !query.IncludeDefault {
			continue
		}
		summaries = append(summaries, CategorySummary{
			Category:     c,
			Display:      view.CategoryIcon(c.Icon),
			ProductCount: counts[c.ID],
		})
	}

	return summaries, nil
}
