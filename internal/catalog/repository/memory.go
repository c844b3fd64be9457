package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/tair/price-list/internal/catalog/domain"
)

// MemoryProductRepository keeps products in process memory.
// Used for local runs without postgres and in tests.
type MemoryProductRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Product
	order []string
	now   func() time.Time
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		items: make(map[string]domain.Product),
		now:   time.Now,
	}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[product.ID]; exists {
		return fmt.Errorf("product %s already exists", product.ID)
	}
	if product.ServerCreatedAt.IsZero() {
		product.ServerCreatedAt = r.now()
	}
	r.items[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return &product, nil
}

func (r *MemoryProductRepository) FindAll(context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.items[id])
	}
	return products, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[product.ID]; !ok {
		r.order = append(r.order, product.ID)
	}
	r.items[product.ID] = *product
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

func (r *MemoryProductRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// MemoryCategoryRepository keeps categories in process memory
type MemoryCategoryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Category
}

func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{items: make(map[string]domain.Category)}
}

func (r *MemoryCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[category.ID]; exists {
		return fmt.Errorf("category %s already exists", category.ID)
	}
	r.items[category.ID] = *category
	return nil
}

func (r *MemoryCategoryRepository) FindByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return &category, nil
}

func (r *MemoryCategoryRepository) FindByName(_ context.Context, name string) (*domain.Category, error) {
	all, _ := r.FindAll(context.Background())
	for _, category := range all {
		if category.Name == name {
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", name, domain.ErrNotFound)
}

// FindAll orders by name then id, like the gorm repository
func (r *MemoryCategoryRepository) FindAll(context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.items))
	for _, category := range r.items {
		categories = append(categories, category)
	}
	slices.SortFunc(categories, func(a, b domain.Category) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return categories, nil
}

func (r *MemoryCategoryRepository) Update(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[category.ID] = *category
	return nil
}

func (r *MemoryCategoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}
