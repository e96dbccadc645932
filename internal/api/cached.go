package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/modelgrid/modelgrid/internal/core"
	"github.com/modelgrid/modelgrid/internal/domain/model"
)

// CachedReader wraps a core.ModelReader with request-shaped caching:
// entries are keyed by the full fetch tuple, so a stale window or a
// different model can never be served for a fresh request. Cache failures
// are logged and bypassed; the cache is an accelerator, not a dependency.
type CachedReader struct {
	inner     core.ModelReader
	cache     core.CacheRepository
	schemaTTL time.Duration
	pageTTL   time.Duration
	logger    *slog.Logger
}

// CachedReaderOptions bundles dependencies for NewCachedReader.
type CachedReaderOptions struct {
	Inner     core.ModelReader
	Cache     core.CacheRepository
	SchemaTTL time.Duration
	PageTTL   time.Duration
	Logger    *slog.Logger
}

// NewCachedReader constructs a CachedReader. A nil cache disables
// memoization and delegates every call.
func NewCachedReader(opts CachedReaderOptions) *CachedReader {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedReader{
		inner:     opts.Inner,
		cache:     opts.Cache,
		schemaTTL: opts.SchemaTTL,
		pageTTL:   opts.PageTTL,
		logger:    logger,
	}
}

// GetSchema returns the cached schema for the identity or fetches and
// stores it.
func (r *CachedReader) GetSchema(ctx context.Context, id model.RouteIdentity) (model.Schema, error) {
	key := SchemaRequest{Identity: id}.CacheKey()

	var schema model.Schema
	if r.lookup(ctx, key, &schema) {
		return schema, nil
	}

	schema, err := r.inner.GetSchema(ctx, id)
	if err != nil {
		return model.Schema{}, err
	}
	r.store(ctx, key, schema, r.schemaTTL)
	return schema, nil
}

// ListRecords returns the cached page for the full request shape or
// fetches and stores it.
func (r *CachedReader) ListRecords(ctx context.Context, id model.RouteIdentity, pq model.PageQuery) (model.Page, error) {
	key := PageRequest{Identity: id, Query: pq}.CacheKey()

	var page model.Page
	if r.lookup(ctx, key, &page) {
		return page, nil
	}

	page, err := r.inner.ListRecords(ctx, id, pq)
	if err != nil {
		return model.Page{}, err
	}
	r.store(ctx, key, page, r.pageTTL)
	return page, nil
}

// lookup reports whether the key was found and decoded into dst.
func (r *CachedReader) lookup(ctx context.Context, key string, dst any) bool {
	if r.cache == nil {
		return false
	}
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.logger.WarnContext(ctx, "cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (r *CachedReader) store(ctx context.Context, key string, v any, ttl time.Duration) {
	if r.cache == nil || ttl <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		r.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.cache.Set(ctx, key, raw, ttl); err != nil {
		r.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}
