// Package data provides the storage-backed implementations of the core
// ports: the Redis fetch cache and the Postgres local record store.
package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheKeyPrefix namespaces every cache entry so the service can share a
// Redis database with other tenants. Request types produce relative keys;
// the prefix is this repo's concern.
const cacheKeyPrefix = "modelgrid:"

// RedisCacheRepo implements core.CacheRepository over a Redis backend.
type RedisCacheRepo struct {
	client redis.UniversalClient
}

// NewRedisCacheRepo creates a RedisCacheRepo with the given Redis client.
func NewRedisCacheRepo(client redis.UniversalClient) *RedisCacheRepo {
	return &RedisCacheRepo{client: client}
}

func cacheKey(key string) string {
	return cacheKeyPrefix + key
}

// Set stores a value under the namespaced key with the given TTL. A zero
// TTL means no expiry.
func (r *RedisCacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("cache key cannot be empty")
	}
	if err := r.client.Set(ctx, cacheKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// Get retrieves a value by key. A missing or expired key yields nil with
// no error, so callers treat it as a plain miss.
func (r *RedisCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("cache key cannot be empty")
	}
	raw, err := r.client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}
	return raw, nil
}

// Delete removes a key and reports whether it existed.
func (r *RedisCacheRepo) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("cache key cannot be empty")
	}
	deleted, err := r.client.Del(ctx, cacheKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("cache delete %q: %w", key, err)
	}
	return deleted > 0, nil
}

// Exists reports whether the key is present.
func (r *RedisCacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("cache key cannot be empty")
	}
	found, err := r.client.Exists(ctx, cacheKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("cache exists %q: %w", key, err)
	}
	return found > 0, nil
}

// Health checks the cache connection.
func (r *RedisCacheRepo) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
