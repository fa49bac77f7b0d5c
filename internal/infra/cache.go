// README: Redis-backed JSON cache for external lookup results.
package infra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded lookup results (geocodes, attraction lists,
// weather descriptions) with a shared TTL.
type Cache struct {
	c   *redis.Client
	ttl time.Duration
}

// NewCache wraps a redis client with the given entry TTL.
func NewCache(c *redis.Client, ttl time.Duration) *Cache {
	return &Cache{c: c, ttl: ttl}
}

// Get reads key into dst. The boolean is false on a miss.
func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(v, dst)
}

// Set stores v under key for the cache's TTL.
func (r *Cache) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.c.Set(ctx, key, b, r.ttl).Err()
}
