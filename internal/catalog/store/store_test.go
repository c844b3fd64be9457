package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/repository"
	"github.com/tair/price-list/internal/catalog/view"
)

type recordingCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *recordingCache) Get(context.Context, string) (view.View, bool) { return view.View{}, false }
func (c *recordingCache) Set(context.Context, string, view.View)        {}
func (c *recordingCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	changes []domain.Change
	err     error
}

func (n *recordingNotifier) NotifyChange(_ context.Context, change domain.Change) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, change)
	return n.err
}

type failingProducts struct {
	*repository.MemoryProductRepository
}

func (failingProducts) FindAll(context.Context) ([]domain.Product, error) {
	return nil, errors.New("connection refused")
}

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *recordingCache, *recordingNotifier) {
	t.Helper()
	c := &recordingCache{}
	n := &recordingNotifier{}
	s := New(repository.NewMemoryProductRepository(), repository.NewMemoryCategoryRepository(), c, n, Config{InstanceID: "replica-1"})
	s.now = func() time.Time { return fixedNow }
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return s, c, n
}

func TestEnsureDefaultCategoryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _, n := newTestStore(t)

	first, err := s.EnsureDefaultCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryName, first.Name)
	assert.Equal(t, domain.DefaultIconKey, first.Icon)

	second, err := s.EnsureDefaultCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, n.changes, 1)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Categories, 1)
}

func TestAddProductStampsAndNotifies(t *testing.T) {
	ctx := context.Background()
	s, c, n := newTestStore(t)

	p, err := s.AddProduct(ctx, domain.NewProduct{Name: "Beras", Price: 65000, CategoryID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.ID)
	require.NotNil(t, p.CreatedAt)
	assert.Equal(t, fixedNow, *p.CreatedAt)
	assert.Nil(t, p.UpdatedAt)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)
	assert.True(t, snap.Loaded)
	assert.Equal(t, "Beras", snap.Products[0].Name)

	assert.Equal(t, 1, c.invalidated)
	require.Len(t, n.changes, 1)
	assert.Equal(t, domain.Change{
		Entity: domain.EntityProduct,
		Action: domain.ActionCreated,
		ID:     "id-1",
		Origin: "replica-1",
		At:     fixedNow,
	}, n.changes[0])
}

func TestUpdateProductAppliesPatchOnly(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	p, err := s.AddProduct(ctx, domain.NewProduct{Name: "Kopi", Price: 15000, CategoryID: "c1"})
	require.NoError(t, err)

	price := int64(17000)
	updated, err := s.UpdateProduct(ctx, p.ID, domain.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Kopi", updated.Name)
	assert.Equal(t, "c1", updated.CategoryID)
	assert.Equal(t, int64(17000), updated.Price)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, fixedNow, *updated.UpdatedAt)

	_, err = s.UpdateProduct(ctx, "missing", domain.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	s, _, n := newTestStore(t)

	assert.ErrorIs(t, s.DeleteProduct(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, s.DeleteCategory(ctx, "nope"), domain.ErrNotFound)
	assert.Empty(t, n.changes)
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _, n := newTestStore(t)

	c, err := s.AddCategory(ctx, domain.NewCategory{Name: "Minuman", Icon: "coffee"})
	require.NoError(t, err)

	icon := "milk"
	updated, err := s.UpdateCategory(ctx, c.ID, domain.CategoryPatch{Icon: &icon})
	require.NoError(t, err)
	assert.Equal(t, "Minuman", updated.Name)
	assert.Equal(t, "milk", updated.Icon)

	require.NoError(t, s.DeleteCategory(ctx, c.ID))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Categories)

	actions := make([]domain.ChangeAction, 0, len(n.changes))
	for _, change := range n.changes {
		assert.Equal(t, domain.EntityCategory, change.Entity)
		actions = append(actions, change.Action)
	}
	assert.Equal(t, []domain.ChangeAction{domain.ActionCreated, domain.ActionUpdated, domain.ActionDeleted}, actions)
}

func TestNotifierFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	s, _, n := newTestStore(t)
	n.err = errors.New("broker down")

	_, err := s.AddProduct(ctx, domain.NewProduct{Name: "Teh", Price: 5000, CategoryID: "c1"})
	assert.NoError(t, err)
}

func TestSubscribeReceivesLatestSnapshot(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, _, _ := newTestStore(t)

	ch := s.Subscribe(ctx)

	_, err := s.AddProduct(ctx, domain.NewProduct{Name: "Gula", Price: 18000, CategoryID: "c1"})
	require.NoError(t, err)
	_, err = s.AddProduct(ctx, domain.NewProduct{Name: "Garam", Price: 4000, CategoryID: "c1"})
	require.NoError(t, err)

	select {
	case snap := <-ch:
		assert.Len(t, snap.Products, 2)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestSubscribeAfterLoadGetsCurrentValue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s, _, _ := newTestStore(t)

	_, err := s.AddProduct(ctx, domain.NewProduct{Name: "Minyak", Price: 32000, CategoryID: "c1"})
	require.NoError(t, err)

	snap := <-s.Subscribe(ctx)
	assert.Len(t, snap.Products, 1)
}

func TestSnapshotLoadFailure(t *testing.T) {
	ctx := context.Background()
	s := New(failingProducts{repository.NewMemoryProductRepository()}, repository.NewMemoryCategoryRepository(), nil, nil, Config{})

	snap, err := s.Snapshot(ctx)
	require.Error(t, err)
	assert.False(t, snap.Loaded)
	assert.Error(t, snap.Err)
	assert.Error(t, s.Refresh(ctx))
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	_, err := s.AddProduct(ctx, domain.NewProduct{Name: "Susu", Price: 21000, CategoryID: "c1"})
	require.NoError(t, err)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	snap.Products[0].Name = "changed"
	*snap.Products[0].CreatedAt = fixedNow.Add(time.Hour)

	again, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Susu", again.Products[0].Name)
	assert.Equal(t, fixedNow, *again.Products[0].CreatedAt)
}

// stallingProducts parks the first FindAll after arm until release is closed,
// returning what it read before parking.
type stallingProducts struct {
	*repository.MemoryProductRepository

	mu       sync.Mutex
	armed    bool
	captured chan struct{}
	release  chan struct{}
}

func (p *stallingProducts) arm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.armed = true
	p.captured = make(chan struct{})
	p.release = make(chan struct{})
}

func (p *stallingProducts) FindAll(ctx context.Context) ([]domain.Product, error) {
	items, err := p.MemoryProductRepository.FindAll(ctx)

	p.mu.Lock()
	hold := p.armed
	p.armed = false
	p.mu.Unlock()

	if hold {
		close(p.captured)
		<-p.release
	}
	return items, err
}

func TestOutOfOrderReloadKeepsNewestSnapshot(t *testing.T) {
	ctx := context.Background()
	products := &stallingProducts{MemoryProductRepository: repository.NewMemoryProductRepository()}
	s := New(products, repository.NewMemoryCategoryRepository(), nil, nil, Config{InstanceID: "replica-1"})

	_, err := s.Snapshot(ctx)
	require.NoError(t, err)

	sub, cancel := context.WithCancel(ctx)
	defer cancel()
	updates := s.Subscribe(sub)
	<-updates

	products.arm()
	done := make(chan error, 1)
	go func() {
		_, err := s.AddProduct(ctx, domain.NewProduct{Name: "A", Price: 1000, CategoryID: "c1"})
		done <- err
	}()

	// A's reload has read only A and is parked; B commits and reloads fully
	<-products.captured
	_, err = s.AddProduct(ctx, domain.NewProduct{Name: "B", Price: 2000, CategoryID: "c1"})
	require.NoError(t, err)
	before, err := s.Snapshot(ctx)
	require.NoError(t, err)

	close(products.release)
	require.NoError(t, <-done)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Products, 2)
	assert.Equal(t, before.Version, snap.Version)

	latest := <-updates
	assert.Len(t, latest.Products, 2)
}

func TestSnapshotVersionChangesOnEveryReload(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	first, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first.Version)

	again, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Version, again.Version)

	_, err = s.AddProduct(ctx, domain.NewProduct{Name: "Susu", Price: 21000, CategoryID: "c1"})
	require.NoError(t, err)
	after, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, after.Version)

	other, _, _ := newTestStore(t)
	fresh, err := other.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, fresh.Version)
}
