package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/modelgrid/modelgrid/internal/bootstrap"
	"github.com/modelgrid/modelgrid/internal/core"
	"github.com/modelgrid/modelgrid/internal/data"
	"github.com/modelgrid/modelgrid/internal/devseed"
	"github.com/modelgrid/modelgrid/internal/domain/model"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting modelgrid",
		"addr", cfg.HTTP.Addr,
		"upstream", cfg.Upstream.BaseURL,
		"cache", cfg.Cache.Enabled(),
	)

	// The local record store is only needed when no upstream is configured.
	var db *sql.DB
	if !cfg.UseUpstream() {
		db, err = bootstrap.ConnectDB(cfg.Postgres, logger)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close database failed", "error", cerr)
			}
		}()

		if cfg.Postgres.RunMigrationsOnStart {
			if err = data.RunMigrations(ctx, db); err != nil {
				return err
			}
		}
		if cfg.IsDev {
			if err = devseed.Seed(ctx, db, logger); err != nil {
				return err
			}
		}
	}

	cacheClient, err := bootstrap.ConnectCache(cfg.Cache, logger)
	if err != nil {
		return err
	}
	if cacheClient != nil {
		defer func() {
			if cerr := cacheClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close cache failed", "error", cerr)
			}
		}()
	}

	contexts := core.NewContextStore()
	contexts.Subscribe(func(id model.RouteIdentity) {
		logger.Info("current view changed", "app", id.AppName, "model", id.ModelName)
	})

	reader := bootstrap.BuildReader(bootstrap.ReaderDeps{
		Config:      &cfg,
		DB:          db,
		CacheClient: cacheClient,
		Logger:      logger,
	})

	server, err := bootstrap.StartHTTPServer(bootstrap.HTTPServerDeps{
		Config:   &cfg,
		Reader:   reader,
		Contexts: contexts,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return bootstrap.WaitForShutdown(server, cfg.HTTP.ShutdownTimeout, logger)
}
