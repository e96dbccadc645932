// Package api implements the REST fetch layer behind core.ModelReader:
// a thin client for a generic model API plus request-shaped caching.
package api

import (
	"fmt"

	"github.com/modelgrid/modelgrid/internal/domain/model"
)

// SchemaRequest is the full shape of a schema fetch. Its key is the cache
// identity the collaborator contract assumes: two renders asking for the
// same schema hit the same entry.
type SchemaRequest struct {
	Identity model.RouteIdentity
}

// CacheKey returns the cache key for this request shape. Keys are
// relative; the cache backend owns any namespacing.
func (r SchemaRequest) CacheKey() string {
	return fmt.Sprintf("schema:%s:%s", r.Identity.AppName, r.Identity.ModelName)
}

// PageRequest is the full shape of a page fetch, window included.
type PageRequest struct {
	Identity model.RouteIdentity
	Query    model.PageQuery
}

// CacheKey returns the cache key for this request shape. Limit and offset
// are part of the key; distinct windows never collide.
func (r PageRequest) CacheKey() string {
	return fmt.Sprintf("page:%s:%s:%d:%d",
		r.Identity.AppName, r.Identity.ModelName, r.Query.Limit, r.Query.Offset)
}
