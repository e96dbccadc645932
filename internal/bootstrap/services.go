package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/modelgrid/modelgrid/config"
	"github.com/modelgrid/modelgrid/internal/api"
	"github.com/modelgrid/modelgrid/internal/core"
	"github.com/modelgrid/modelgrid/internal/data"
)

// ReaderDeps bundles the dependencies for BuildReader.
type ReaderDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	CacheClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildReader assembles the core.ModelReader the list views consume:
// the upstream REST client when a base URL is configured, the local
// record store otherwise, wrapped in the request-shaped cache when a
// cache backend is available.
//
//nolint:ireturn // the port type is the point here.
func BuildReader(deps ReaderDeps) core.ModelReader {
	var reader core.ModelReader
	if deps.Config.UseUpstream() {
		reader = api.NewClient(api.ClientOptions{
			BaseURL: deps.Config.Upstream.BaseURL,
			Token:   deps.Config.Upstream.Token,
			Timeout: deps.Config.Upstream.Timeout,
		})
	} else {
		reader = data.NewRecordRepo(deps.DB)
	}

	if deps.CacheClient == nil {
		return reader
	}
	return api.NewCachedReader(api.CachedReaderOptions{
		Inner:     reader,
		Cache:     data.NewRedisCacheRepo(deps.CacheClient),
		SchemaTTL: deps.Config.Cache.SchemaTTL,
		PageTTL:   deps.Config.Cache.PageTTL,
		Logger:    deps.Logger,
	})
}
