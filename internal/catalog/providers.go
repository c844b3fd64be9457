package catalog

import (
	"github.com/google/wire"

	"github.com/tair/price-list/internal/catalog/delivery/http"
	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/store"
	"github.com/tair/price-list/internal/catalog/usecase/command"
	"github.com/tair/price-list/internal/catalog/usecase/query"
)

// Service is the assembled catalog: the HTTP handler and the store behind it
type Service struct {
	Handler *http.CatalogHandler
	Store   *store.Store
}

// NewService bundles the handler and store
func NewService(handler *http.CatalogHandler, s *store.Store) *Service {
	return &Service{Handler: handler, Store: s}
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	createProduct *command.CreateProductHandler,
	updateProduct *command.UpdateProductHandler,
	deleteProduct *command.DeleteProductHandler,
	createCategory *command.CreateCategoryHandler,
	updateCategory *command.UpdateCategoryHandler,
	deleteCategory *command.DeleteCategoryHandler,
) *http.CommandHandlers {
	return &http.CommandHandlers{
		CreateProduct:  createProduct,
		UpdateProduct:  updateProduct,
		DeleteProduct:  deleteProduct,
		CreateCategory: createCategory,
		UpdateCategory: updateCategory,
		DeleteCategory: deleteCategory,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	getProduct *query.GetProductHandler,
	listProducts *query.ListProductsHandler,
	getStats *query.GetStatsHandler,
	listCategories *query.ListCategoriesHandler,
) *http.QueryHandlers {
	return &http.QueryHandlers{
		GetProduct:     getProduct,
		ListProducts:   listProducts,
		GetStats:       getStats,
		ListCategories: listCategories,
	}
}

// Wire sets
var StoreSet = wire.NewSet(
	store.New,
	wire.Bind(new(domain.Catalog), new(*store.Store)),
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewCreateCategoryHandler,
	command.NewUpdateCategoryHandler,
	command.NewDeleteCategoryHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewGetStatsHandler,
	query.NewListCategoriesHandler,
	ProvideQueryHandlers,
)
