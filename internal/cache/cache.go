package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quill/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client with JSON get/set, cache-aside, and explicit
// invalidation. It is injected into the components that need caching instead
// of being reached through a package-level singleton, and every method is
// safe to call with a nil receiver or nil client: caching simply turns off.
type Cache struct {
	client *redis.Client
}

// New returns a Cache backed by client. A nil client yields a pass-through cache.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Client exposes the underlying Redis client for health checks and rate limiting.
func (c *Cache) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on miss it calls fetch (which must populate dest)
// and stores the result with ttl. The cache write is best-effort.
func (c *Cache) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := c.GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		middleware.CacheRequests.WithLabelValues("hit").Inc()
		return nil
	}
	middleware.CacheRequests.WithLabelValues("miss").Inc()

	if err := fetch(); err != nil {
		return err
	}

	_ = c.SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes the given keys. Failures are ignored; the TTL is the backstop.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// ClearIndex drops every cached index listing page.
func (c *Cache) ClearIndex(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, indexPageGlob, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return c.client.Del(ctx, keys...).Err()
	}
	return nil
}
