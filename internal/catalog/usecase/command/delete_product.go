package command

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	catalog domain.Catalog
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(catalog domain.Catalog) *DeleteProductHandler {
	return &DeleteProductHandler{catalog: catalog}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := requireID(cmd.ID, "product"); err != nil {
		return err
	}

	if err := h.catalog.DeleteProduct(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
