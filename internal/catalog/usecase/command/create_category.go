package command

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a new category
type CreateCategoryCommand struct {
	Name string
	Icon string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	catalog domain.Catalog
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(catalog domain.Catalog) *CreateCategoryHandler {
	return &CreateCategoryHandler{catalog: catalog}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	name, err := requireName(cmd.Name, "category")
	if err != nil {
		return nil, err
	}
	if err := rejectReservedName(name); err != nil {
		return nil, err
	}
	icon, err := requireIcon(cmd.Icon)
	if err != nil {
		return nil, err
	}

	category, err := h.catalog.AddCategory(ctx, domain.NewCategory{Name: name, Icon: icon})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
