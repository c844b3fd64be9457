package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

func requireName(name, what string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("%s name is required", what)
	}
	return trimmed, nil
}

// rejectReservedName keeps the Default sentinel unique
func rejectReservedName(name string) error {
	if strings.EqualFold(name, domain.DefaultCategoryName) {
		return invalid("the name %s is reserved", domain.DefaultCategoryName)
	}
	return nil
}

func requirePrice(price int64) error {
	if price <= 0 {
		return invalid("price must be greater than zero")
	}
	return nil
}

func requireID(id, what string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("%s id is required", what)
	}
	return nil
}

func requireIcon(icon string) (string, error) {
	trimmed := strings.TrimSpace(icon)
	if trimmed == "" {
		return "", invalid("category icon is required")
	}
	return trimmed, nil
}

// requireCategory checks that categoryID names an existing category
func requireCategory(ctx context.Context, catalog domain.Catalog, categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return invalid("category is required")
	}

	snap, err := catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if _, ok := view.NewResolver(snap.Categories).Lookup(categoryID); !ok {
		return invalid("category %s does not exist", categoryID)
	}
	return nil
}
