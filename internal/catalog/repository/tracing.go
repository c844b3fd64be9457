package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/price-list/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// ProductRepositoryWithTracing wraps a ProductRepository with one span per call
type ProductRepositoryWithTracing struct {
	next domain.ProductRepository
}

// NewProductRepositoryWithTracing decorates next with tracing
func NewProductRepositoryWithTracing(next domain.ProductRepository) *ProductRepositoryWithTracing {
	return &ProductRepositoryWithTracing{next: next}
}

func (r *ProductRepositoryWithTracing) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Product.Create",
		trace.WithAttributes(
			attribute.String("product.id", product.ID),
			attribute.String("product.name", product.Name),
			attribute.String("product.category_id", product.CategoryID),
			attribute.Int64("product.price", product.Price),
		),
	)
	defer span.End()

	err := r.next.Create(ctx, product)
	recordError(span, err)
	return err
}

func (r *ProductRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Product.FindByID",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("product.name", product.Name))
	return product, nil
}

func (r *ProductRepositoryWithTracing) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Product.FindAll")
	defer span.End()

	products, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *ProductRepositoryWithTracing) Update(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Product.Update",
		trace.WithAttributes(
			attribute.String("product.id", product.ID),
			attribute.Int64("product.price", product.Price),
		),
	)
	defer span.End()

	err := r.next.Update(ctx, product)
	recordError(span, err)
	return err
}

func (r *ProductRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Product.Delete",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	recordError(span, err)
	return err
}

func (r *ProductRepositoryWithTracing) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Product.Count")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

// CategoryRepositoryWithTracing wraps a CategoryRepository with one span per call
type CategoryRepositoryWithTracing struct {
	next domain.CategoryRepository
}

// NewCategoryRepositoryWithTracing decorates next with tracing
func NewCategoryRepositoryWithTracing(next domain.CategoryRepository) *CategoryRepositoryWithTracing {
	return &CategoryRepositoryWithTracing{next: next}
}

func (r *CategoryRepositoryWithTracing) Create(ctx context.Context, category *domain.Category) error {
	ctx, span := tracer.Start(ctx, "repository.Category.Create",
		trace.WithAttributes(
			attribute.String("category.id", category.ID),
			attribute.String("category.name", category.Name),
			attribute.String("category.icon", category.Icon),
		),
	)
	defer span.End()

	err := r.next.Create(ctx, category)
	recordError(span, err)
	return err
}

func (r *CategoryRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.Category.FindByID",
		trace.WithAttributes(attribute.String("category.id", id)),
	)
	defer span.End()

	category, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepositoryWithTracing) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.Category.FindByName",
		trace.WithAttributes(attribute.String("category.name", name)),
	)
	defer span.End()

	category, err := r.next.FindByName(ctx, name)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepositoryWithTracing) FindAll(ctx context.Context) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.Category.FindAll")
	defer span.End()

	categories, err := r.next.FindAll(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(categories)))
	return categories, nil
}

func (r *CategoryRepositoryWithTracing) Update(ctx context.Context, category *domain.Category) error {
	ctx, span := tracer.Start(ctx, "repository.Category.Update",
		trace.WithAttributes(
			attribute.String("category.id", category.ID),
			attribute.String("category.name", category.Name),
		),
	)
	defer span.End()

	err := r.next.Update(ctx, category)
	recordError(span, err)
	return err
}

func (r *CategoryRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Category.Delete",
		trace.WithAttributes(attribute.String("category.id", id)),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	recordError(span, err)
	return err
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
