// Package cache memoises derived product views by filter key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/price-list/internal/catalog/view"
	"github.com/tair/price-list/pkg/logger"
)

const keyPrefix = "catalog:view:"

// ViewCache stores derived views. Implementations never fail reads; a miss is reported as ok=false.
type ViewCache interface {
	Get(ctx context.Context, filterKey string) (view.View, bool)
	Set(ctx context.Context, filterKey string, v view.View)
	Invalidate(ctx context.Context) error
}

// Key hashes a filter key into a redis key
func Key(filterKey string) string {
	hash := sha256.Sum256([]byte(filterKey))
	return keyPrefix + hex.EncodeToString(hash[:])
}

// RedisViewCache keeps views in redis as JSON with a fixed TTL
type RedisViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a redis-backed cache, or a no-op cache when client is nil
func New(client *redis.Client, ttl time.Duration) ViewCache {
	if client == nil {
		return Noop{}
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisViewCache{client: client, ttl: ttl}
}

func (c *RedisViewCache) Get(ctx context.Context, filterKey string) (view.View, bool) {
	key := Key(filterKey)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("View cache read failed")
		}
		return view.View{}, false
	}

	var v view.View
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Discarding undecodable cached view")
		return view.View{}, false
	}

	logger.Debug(ctx).Str("cache_key", key).Msg("Cache hit")
	return v, true
}

func (c *RedisViewCache) Set(ctx context.Context, filterKey string, v view.View) {
	key := Key(filterKey)
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to encode view")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache view")
		return
	}

	logger.Debug(ctx).
		Str("cache_key", key).
		Dur("ttl", c.ttl).
		Int("size", len(raw)).
		Msg("View cached")
}

// Invalidate drops every cached view
func (c *RedisViewCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		logger.Debug(ctx).Int("count", len(keys)).Msg("View cache invalidated")
	}
	return nil
}

// Noop caches nothing
type Noop struct{}

func (Noop) Get(context.Context, string) (view.View, bool) { return view.View{}, false }
func (Noop) Set(context.Context, string, view.View)        {}
func (Noop) Invalidate(context.Context) error               { return nil }
