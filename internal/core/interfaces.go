// Package core defines the ports between the HTTP layer and the data
// collaborators that feed the view resolver.
package core

import (
	"context"
	"time"

	"github.com/modelgrid/modelgrid/internal/domain/model"
)

// ModelReader is the fetch contract the list view depends on. The two
// calls are independent and are issued concurrently per render; caching
// and deduplication are the implementation's concern, keyed by the full
// request shape it is handed.
type ModelReader interface {
	// GetSchema returns the model's field schema.
	GetSchema(ctx context.Context, id model.RouteIdentity) (model.Schema, error)
	// ListRecords returns one page of records plus the total row count.
	ListRecords(ctx context.Context, id model.RouteIdentity, pq model.PageQuery) (model.Page, error)
}

// CacheRepository defines the caching operations the fetch layer uses to
// memoize schema and page responses.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// Exists checks if a key exists in the cache.
	Exists(ctx context.Context, key string) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}
