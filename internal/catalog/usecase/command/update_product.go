package command

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/domain"
)

// UpdateProductCommand carries a partial product update. Nil fields are left unchanged.
type UpdateProductCommand struct {
	ID         string
	Name       *string
	Price      *int64
	CategoryID *string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	catalog domain.Catalog
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(catalog domain.Catalog) *UpdateProductHandler {
	return &UpdateProductHandler{catalog: catalog}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if err := requireID(cmd.ID, "product"); err != nil {
		return nil, err
	}

	var patch domain.ProductPatch
	if cmd.Name != nil {
		name, err := requireName(*cmd.Name, "product")
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if cmd.Price != nil {
		if err := requirePrice(*cmd.Price); err != nil {
			return nil, err
		}
		patch.Price = cmd.Price
	}
	if cmd.CategoryID != nil {
		if err := requireCategory(ctx, h.catalog, *cmd.CategoryID); err != nil {
			return nil, err
		}
		patch.CategoryID = cmd.CategoryID
	}
	if patch.Empty() {
		return nil, invalid("no fields to update")
	}

	product, err := h.catalog.UpdateProduct(ctx, cmd.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
