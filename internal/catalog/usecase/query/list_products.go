package query

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/cache"
	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Filters domain.FilterState
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	catalog domain.Catalog
	engine  *view.Engine
	cache   cache.ViewCache
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(catalog domain.Catalog, engine *view.Engine, viewCache cache.ViewCache) *ListProductsHandler {
	if viewCache == nil {
		viewCache = cache.Noop{}
	}
	return &ListProductsHandler{catalog: catalog, engine: engine, cache: viewCache}
}

// Handle executes the list products query. Cached views are keyed by snapshot
// version, so a view derived from a superseded snapshot is never served again.
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) (view.View, error) {
	filters := query.Filters.Normalize()

	snap, err := h.catalog.Snapshot(ctx)
	if err != nil {
		return view.View{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	key := snap.Version + "|" + filters.Key()
	if cached, ok := h.cache.Get(ctx, key); ok {
		return cached, nil
	}

	v := h.Derive(snap, filters)
	h.cache.Set(ctx, key, v)
	return v, nil
}

// Derive computes the view for an already loaded snapshot without touching the cache
func (h *ListProductsHandler) Derive(snap domain.Snapshot, filters domain.FilterState) view.View {
	return h.engine.Derive(snap.Products, snap.Categories, filters)
}
