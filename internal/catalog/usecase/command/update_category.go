package command

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

// UpdateCategoryCommand carries a partial category update
type UpdateCategoryCommand struct {
	ID   string
	Name *string
	Icon *string
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	catalog domain.Catalog
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(catalog domain.Catalog) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{catalog: catalog}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	if err := requireID(cmd.ID, "category"); err != nil {
		return nil, err
	}

	var patch domain.CategoryPatch
	if cmd.Name != nil {
		name, err := requireName(*cmd.Name, "category")
		if err != nil {
			return nil, err
		}
		if err := h.checkRename(ctx, cmd.ID, name); err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if cmd.Icon != nil {
		icon, err := requireIcon(*cmd.Icon)
		if err != nil {
			return nil, err
		}
		patch.Icon = &icon
	}
	if patch.Empty() {
		return nil, invalid("no fields to update")
	}

	category, err := h.catalog.UpdateCategory(ctx, cmd.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// checkRename forbids renaming the Default category and renaming anything else to Default
func (h *UpdateCategoryHandler) checkRename(ctx context.Context, id, name string) error {
	snap, err := h.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	current, ok := view.NewResolver(snap.Categories).Lookup(id)
	if ok && current.IsDefault() {
		if name != domain.DefaultCategoryName {
			return invalid("the %s category cannot be renamed", domain.DefaultCategoryName)
		}
		return nil
	}
	return rejectReservedName(name)
}
