package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID string
}

// ProductDetail is a product with its category resolved for display
type ProductDetail struct {
	domain.Product
	CategoryName string    `json:"categoryName"`
	CategoryIcon view.Icon `json:"categoryIcon"`
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	catalog domain.Catalog
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(catalog domain.Catalog) *GetProductHandler {
	return &GetProductHandler{catalog: catalog}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*ProductDetail, error) {
	if strings.TrimSpace(query.ID) == "" {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrValidation)
	}

	snap, err := h.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	for _, p := range snap.Products {
		if p.ID != query.ID {
			continue
		}
		resolver := view.NewResolver(snap.Categories)
		return &ProductDetail{
			Product:      p,
			CategoryName: resolver.Name(p.CategoryID),
			CategoryIcon: resolver.Icon(p.CategoryID),
		}, nil
	}

	return nil, fmt.Errorf("product %s: %w", query.ID, domain.ErrNotFound)
}
