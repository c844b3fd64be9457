package command

import (
	"context"
	"fmt"

	"github.com/tair/price-list/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name       string
	Price      int64
	CategoryID string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	catalog domain.Catalog
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(catalog domain.Catalog) *CreateProductHandler {
	return &CreateProductHandler{catalog: catalog}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	name, err := requireName(cmd.Name, "product")
	if err != nil {
		return nil, err
	}
	if err := requirePrice(cmd.Price); err != nil {
		return nil, err
	}
	if err := requireCategory(ctx, h.catalog, cmd.CategoryID); err != nil {
		return nil, err
	}

	product, err := h.catalog.AddProduct(ctx, domain.NewProduct{
		Name:       name,
		Price:      cmd.Price,
		CategoryID: cmd.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
