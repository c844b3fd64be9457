package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/price-list/internal/catalog/usecase/command"
	"github.com/tair/price-list/internal/catalog/usecase/query"
	"github.com/tair/price-list/internal/catalog/view"
)

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	includeDefault, _ := strconv.ParseBool(r.URL.Query().Get("includeDefault"))

	categories, err := h.queries.ListCategories.Handle(r.Context(), query.ListCategoriesQuery{IncludeDefault: includeDefault})
	if err != nil {
		respondFailure(w, r, err, loadFailure)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.commands.CreateCategory.Handle(r.Context(), command.CreateCategoryCommand{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to create category")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name *string `json:"name"`
		Icon *string `json:"icon"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.commands.UpdateCategory.Handle(r.Context(), command.UpdateCategoryCommand{
		ID:   mux.Vars(r)["id"],
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to update category")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteCategory.Handle(r.Context(), command.DeleteCategoryCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondFailure(w, r, err, "Failed to delete category")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category deleted successfully",
	})
}

// ListIcons handles GET /api/icons
func (h *CatalogHandler) ListIcons(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view.AvailableIcons(),
	})
}
