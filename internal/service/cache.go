package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheClient is the subset of *redis.Client used for catalog caching.
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// readThroughCache is a cache-aside helper. Redis failures are logged and
// treated as misses; they never fail a request.
type readThroughCache struct {
	client CacheClient
	ttl    time.Duration
	logger *zap.Logger
}

func newReadThroughCache(client CacheClient, ttl time.Duration, logger *zap.Logger) *readThroughCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &readThroughCache{client: client, ttl: ttl, logger: logger}
}

func (c *readThroughCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// get decodes the cached value into dst and reports whether it was a hit.
func (c *readThroughCache) get(ctx context.Context, key string, dst any) bool {
	if !c.enabled() {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *readThroughCache) set(ctx context.Context, key string, value any) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *readThroughCache) del(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func storeCacheKey(id string) string   { return "stores:" + id }
func productCacheKey(id string) string { return "products:" + id }
