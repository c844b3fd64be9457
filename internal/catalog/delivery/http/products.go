package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/usecase/command"
	"github.com/tair/price-list/internal/catalog/usecase/query"
)

const loadFailure = "Failed to load data"

// parseFilters reads a FilterState from the query string. Unknown enum values are rejected.
func parseFilters(values url.Values) (domain.FilterState, error) {
	priceRange, err := domain.ParsePriceRange(values.Get("priceRange"))
	if err != nil {
		return domain.FilterState{}, err
	}
	sortField, err := domain.ParseSortField(values.Get("sortField"))
	if err != nil {
		return domain.FilterState{}, err
	}
	sortOrder, err := domain.ParseSortOrder(values.Get("sortOrder"))
	if err != nil {
		return domain.FilterState{}, err
	}

	return domain.FilterState{
		Search:     values.Get("search"),
		CategoryID: values.Get("categoryId"),
		PriceRange: priceRange,
		SortField:  sortField,
		SortOrder:  sortOrder,
	}, nil
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		respondFailure(w, r, err, loadFailure)
		return
	}

	v, err := h.queries.ListProducts.Handle(r.Context(), query.ListProductsQuery{Filters: filters})
	if err != nil {
		respondFailure(w, r, err, loadFailure)
		return
	}

	h.totalProducts.Set(float64(v.Stats.Total))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": v.Products,
			"stats":    v.Stats,
			"filters":  filters,
		},
	})
}

// GetStats handles GET /api/products/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		respondFailure(w, r, err, loadFailure)
		return
	}

	stats, err := h.queries.GetStats.Handle(r.Context(), query.GetStatsQuery{Filters: filters})
	if err != nil {
		respondFailure(w, r, err, loadFailure)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.queries.GetProduct.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		respondFailure(w, r, err, loadFailure)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		Price      int64  `json:"price"`
		CategoryID string `json:"categoryId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.commands.CreateProduct.Handle(r.Context(), command.CreateProductCommand{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to create product")
		return
	}

	h.updateProductsMetric(r.Context())

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       *string `json:"name"`
		Price      *int64  `json:"price"`
		CategoryID *string `json:"categoryId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.commands.UpdateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ID:         mux.Vars(r)["id"],
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteProduct.Handle(r.Context(), command.DeleteProductCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondFailure(w, r, err, "Failed to delete product")
		return
	}

	h.updateProductsMetric(r.Context())

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}
