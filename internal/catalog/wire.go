//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/price-list/internal/catalog/cache"
	"github.com/tair/price-list/internal/catalog/delivery/http"
	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/store"
	"github.com/tair/price-list/internal/catalog/view"
)

// InitializeService initializes the catalog service with all dependencies
func InitializeService(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	viewCache cache.ViewCache,
	notifier domain.ChangeNotifier,
	storeConfig store.Config,
	engine *view.Engine,
	reg prometheus.Registerer,
) (*Service, error) {
	wire.Build(
		StoreSet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewCatalogHandler,
		NewService,
	)
	return nil, nil
}
