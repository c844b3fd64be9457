package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	if swaggerHandler == nil {
		swaggerHandler = httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))
	}
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListProducts godoc
// @Summary List products
// @Description Filter, sort and summarise the catalog
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive name substring"
// @Param categoryId query string false "Category id"
// @Param priceRange query string false "all, under-50k, 50k-100k, 100k-500k, over-500k"
// @Param sortField query string false "name, price, createdAt, category"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} object{success=bool,data=object{products=[]object,stats=object,filters=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetStats godoc
// @Summary Get product statistics
// @Description Visible count, sum and mean plus per-category and per-price-range counts
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive name substring"
// @Param categoryId query string false "Category id"
// @Param priceRange query string false "Price range"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}

// StreamProducts godoc
// @Summary Stream product views
// @Description Server-sent events; one "view" event per catalog change
// @Tags Products
// @Produce text/event-stream
// @Param search query string false "Case-insensitive name substring"
// @Param categoryId query string false "Category id"
// @Param priceRange query string false "Price range"
// @Param sortField query string false "Sort field"
// @Param sortOrder query string false "Sort order"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products/stream [get]
func (h *CatalogHandler) StreamProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Product with its resolved category name and icon
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// CreateProduct godoc
// @Summary Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{name=string,price=int,categoryId=string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update; omitted fields keep their value
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{name=string,price=int,categoryId=string} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Param includeDefault query bool false "Include the Default category"
// @Success 200 {object} object{success=bool,data=[]object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// CreateCategory godoc
// @Summary Create a new category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body object{name=string,icon=string} true "Category data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/categories [post]
func (h *CatalogHandler) CreateCategoryDoc() {}

// UpdateCategory godoc
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body object{name=string,icon=string} true "Category data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{id} [put]
func (h *CatalogHandler) UpdateCategoryDoc() {}

// DeleteCategory godoc
// @Summary Delete a category
// @Description The Default category cannot be deleted
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategoryDoc() {}

// ListIcons godoc
// @Summary List category icons
// @Tags Categories
// @Produce json
// @Success 200 {object} object{success=bool,data=[]object}
// @Router /api/icons [get]
func (h *CatalogHandler) ListIconsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
