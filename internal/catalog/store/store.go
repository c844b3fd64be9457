// Package store is the in-process catalog facade. It keeps the latest
// snapshot of products and categories in memory, writes through to the
// repositories and fans every committed change out to subscribers.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tair/price-list/internal/catalog/cache"
	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/pkg/logger"
)

// Config identifies this replica in outgoing change notifications
type Config struct {
	InstanceID string
}

// Store implements domain.Catalog
type Store struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	cache      cache.ViewCache
	notifier   domain.ChangeNotifier
	instanceID string

	now   func() time.Time
	newID func() string

	mu       sync.RWMutex
	snapshot domain.Snapshot
	epoch    string

	// reloads counts started reloads; installed is the one whose result is in snapshot
	reloads   uint64
	installed uint64

	subMu   sync.Mutex
	subs    map[uint64]chan domain.Snapshot
	nextSub uint64
}

var _ domain.Catalog = (*Store)(nil)

// New creates a store. A nil cache or notifier disables that concern.
func New(products domain.ProductRepository, categories domain.CategoryRepository, viewCache cache.ViewCache, notifier domain.ChangeNotifier, cfg Config) *Store {
	if viewCache == nil {
		viewCache = cache.Noop{}
	}
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &Store{
		products:   products,
		categories: categories,
		cache:      viewCache,
		notifier:   notifier,
		instanceID: cfg.InstanceID,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		epoch:      uuid.New().String(),
		subs:       make(map[uint64]chan domain.Snapshot),
	}
}

// InstanceID returns the origin stamped on changes made by this store
func (s *Store) InstanceID() string {
	return s.instanceID
}

// Snapshot returns the current catalog, loading it on first use
func (s *Store) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap.Loaded {
		return clone(snap), nil
	}
	return s.reload(ctx)
}

// Subscribe registers a latest-value subscriber
func (s *Store) Subscribe(ctx context.Context) <-chan domain.Snapshot {
	ch := make(chan domain.Snapshot, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	s.mu.RLock()
	if s.snapshot.Loaded {
		ch <- clone(s.snapshot)
	}
	s.mu.RUnlock()
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		delete(s.subs, id)
		close(ch)
		s.subMu.Unlock()
	}()

	return ch
}

// Refresh reloads from the repositories and notifies local subscribers only.
// It is used when another replica reports a change.
func (s *Store) Refresh(ctx context.Context) error {
	snap, err := s.reload(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to invalidate view cache")
	}
	s.broadcast(snap)
	return nil
}

// EnsureDefaultCategory creates the Default sentinel category when missing
func (s *Store) EnsureDefaultCategory(ctx context.Context) (*domain.Category, error) {
	existing, err := s.categories.FindByName(ctx, domain.DefaultCategoryName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up default category: %w", err)
	}

	category := &domain.Category{
		ID:   s.newID(),
		Name: domain.DefaultCategoryName,
		Icon: domain.DefaultIconKey,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create default category: %w", err)
	}

	logger.Info(ctx).Str("category_id", category.ID).Msg("Default category created")
	s.changed(ctx, domain.EntityCategory, domain.ActionCreated, category.ID)
	return category, nil
}

func (s *Store) AddProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	now := s.now()
	product := &domain.Product{
		ID:         s.newID(),
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		CreatedAt:  &now,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.changed(ctx, domain.EntityProduct, domain.ActionCreated, product.ID)
	return product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		product.CategoryID = *patch.CategoryID
	}
	now := s.now()
	product.UpdatedAt = &now

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.changed(ctx, domain.EntityProduct, domain.ActionUpdated, product.ID)
	return product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.changed(ctx, domain.EntityProduct, domain.ActionDeleted, id)
	return nil
}

func (s *Store) AddCategory(ctx context.Context, in domain.NewCategory) (*domain.Category, error) {
	category := &domain.Category{
		ID:   s.newID(),
		Name: in.Name,
		Icon: in.Icon,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.changed(ctx, domain.EntityCategory, domain.ActionCreated, category.ID)
	return category, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Icon != nil {
		category.Icon = *patch.Icon
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.changed(ctx, domain.EntityCategory, domain.ActionUpdated, category.ID)
	return category, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.changed(ctx, domain.EntityCategory, domain.ActionDeleted, id)
	return nil
}

// changed runs after a committed mutation. Failures here are logged and never
// surface to the caller since the write already succeeded.
func (s *Store) changed(ctx context.Context, entity domain.ChangeEntity, action domain.ChangeAction, id string) {
	if err := s.Refresh(ctx); err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to reload catalog after change")
	}

	change := domain.Change{
		Entity: entity,
		Action: action,
		ID:     id,
		Origin: s.instanceID,
		At:     s.now().UTC(),
	}
	if err := s.notifier.NotifyChange(ctx, change); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("entity", string(entity)).
			Str("action", string(action)).
			Str("entity_id", id).
			Msg("Failed to publish catalog change")
	}
}

// reload reads both repositories and installs the result unless a reload that
// started later has already been installed. A reload that started later read
// everything committed before this one started, so dropping the older result
// never loses a write.
func (s *Store) reload(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	s.reloads++
	ticket := s.reloads
	s.mu.Unlock()

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return domain.Snapshot{Err: err}, fmt.Errorf("failed to load products: %w", err)
	}
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return domain.Snapshot{Err: err}, fmt.Errorf("failed to load categories: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket < s.installed {
		logger.Debug(ctx).
			Uint64("reload", ticket).
			Uint64("installed", s.installed).
			Msg("Discarding superseded catalog snapshot")
		return clone(s.snapshot), nil
	}

	s.installed = ticket
	s.snapshot = domain.Snapshot{
		Products:   products,
		Categories: categories,
		Loaded:     true,
		Version:    fmt.Sprintf("%s.%d", s.epoch, ticket),
	}

	logger.Debug(ctx).
		Int("products", len(products)).
		Int("categories", len(categories)).
		Str("version", s.snapshot.Version).
		Msg("Catalog snapshot loaded")
	return clone(s.snapshot), nil
}

func (s *Store) broadcast(snap domain.Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		// keep only the newest value for slow readers
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- clone(snap):
		default:
		}
	}
}

// clone copies everything a caller could mutate, timestamps included
func clone(snap domain.Snapshot) domain.Snapshot {
	snap.Products = slices.Clone(snap.Products)
	for i := range snap.Products {
		snap.Products[i].CreatedAt = cloneTime(snap.Products[i].CreatedAt)
		snap.Products[i].UpdatedAt = cloneTime(snap.Products[i].UpdatedAt)
	}
	snap.Categories = slices.Clone(snap.Categories)
	return snap
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// NoopNotifier drops every change
type NoopNotifier struct{}

func (NoopNotifier) NotifyChange(context.Context, domain.Change) error { return nil }
