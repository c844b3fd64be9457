package query

import (
	"context"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

// GetStatsQuery represents the query to get product statistics for a filter
type GetStatsQuery struct {
	Filters domain.FilterState
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	list *ListProductsHandler
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(list *ListProductsHandler) *GetStatsHandler {
	return &GetStatsHandler{list: list}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context, query GetStatsQuery) (*view.Stats, error) {
	v, err := h.list.Handle(ctx, ListProductsQuery(query))
	if err != nil {
		return nil, err
	}
	return &v.Stats, nil
}
