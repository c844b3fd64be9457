package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/view"
)

func TestKeyIsStableAndPrefixed(t *testing.T) {
	a := domain.FilterState{Search: "milk", PriceRange: domain.PriceRangeUnder50k}.Key()
	b := domain.FilterState{Search: "milk", PriceRange: domain.PriceRangeUnder50k}.Key()
	c := domain.FilterState{Search: "milk"}.Key()

	assert.Equal(t, Key(a), Key(b))
	assert.NotEqual(t, Key(a), Key(c))
	assert.True(t, strings.HasPrefix(Key(a), keyPrefix))
	assert.Len(t, strings.TrimPrefix(Key(a), keyPrefix), 64)
}

func TestNewWithoutClientIsNoop(t *testing.T) {
	ctx := context.Background()
	c := New(nil, time.Minute)
	assert.IsType(t, Noop{}, c)

	c.Set(ctx, "k", view.View{Products: []domain.Product{{ID: "p1"}}})
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx))
}

func newRedisCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, ViewCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	return mr, New(client, ttl)
}

func sampleView() view.View {
	products := []domain.Product{
		{ID: "p1", Name: "Kopi Bubuk", Price: 25000, CategoryID: "c1"},
		{ID: "p2", Name: "Sabun", Price: 120000, CategoryID: "c2"},
	}
	categories := []domain.Category{{ID: "c1", Name: "Minuman", Icon: "coffee"}, {ID: "c2", Name: "Pembersih", Icon: "cleaning"}}
	return view.Derive(products, categories, domain.FilterState{SortField: domain.SortByPrice, SortOrder: domain.Ascending})
}

func TestRedisViewCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, c := newRedisCache(t, time.Minute)
	require.IsType(t, &RedisViewCache{}, c)

	_, ok := c.Get(ctx, "v1|all")
	assert.False(t, ok)

	want := sampleView()
	c.Set(ctx, "v1|all", want)

	assert.True(t, mr.Exists(Key("v1|all")))
	assert.Equal(t, time.Minute, mr.TTL(Key("v1|all")))

	got, ok := c.Get(ctx, "v1|all")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisViewCacheDefaultTTL(t *testing.T) {
	mr, c := newRedisCache(t, 0)
	c.Set(context.Background(), "k", sampleView())
	assert.Equal(t, 5*time.Minute, mr.TTL(Key("k")))
}

func TestRedisViewCacheDiscardsUndecodableEntry(t *testing.T) {
	mr, c := newRedisCache(t, time.Minute)
	require.NoError(t, mr.Set(Key("broken"), "{not json"))

	_, ok := c.Get(context.Background(), "broken")
	assert.False(t, ok)
}

func TestRedisViewCacheInvalidateDropsOnlyViews(t *testing.T) {
	ctx := context.Background()
	mr, c := newRedisCache(t, time.Minute)

	c.Set(ctx, "a", sampleView())
	c.Set(ctx, "b", sampleView())
	require.NoError(t, mr.Set("ratelimit:catalog:10.0.0.5", "x"))

	require.NoError(t, c.Invalidate(ctx))

	assert.False(t, mr.Exists(Key("a")))
	assert.False(t, mr.Exists(Key("b")))
	assert.True(t, mr.Exists("ratelimit:catalog:10.0.0.5"))

	// nothing left to delete
	assert.NoError(t, c.Invalidate(ctx))
}

func TestRedisViewCacheWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	mr, c := newRedisCache(t, time.Minute)
	c.Set(ctx, "k", sampleView())
	mr.Close()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Set(ctx, "k", sampleView())
	assert.Error(t, c.Invalidate(ctx))
}
