package command

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID string
}

// DeleteCategoryHandler handles category deletion command.
// Products that still reference the category are left as they are.
type DeleteCategoryHandler struct {
	catalog domain.Catalog
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(catalog domain.Catalog) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{catalog: catalog}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := requireID(cmd.ID, "category"); err != nil {
		return err
	}

	snap, err := h.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if category, ok := view.NewResolver(snap.Categories).Lookup(cmd.ID); ok && category.IsDefault() {
		return invalid("the %s category cannot be deleted", domain.DefaultCategoryName)
	}

	if err := h.catalog.DeleteCategory(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
