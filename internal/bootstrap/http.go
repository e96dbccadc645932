package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelgrid/modelgrid/config"
	"github.com/modelgrid/modelgrid/internal/core"
	httpx "github.com/modelgrid/modelgrid/internal/http"
	"github.com/modelgrid/modelgrid/internal/view"
)

// HTTPServerDeps contains the dependencies for StartHTTPServer.
type HTTPServerDeps struct {
	Config   *config.AppConfig
	Reader   core.ModelReader
	Contexts *core.ContextStore
	Logger   *slog.Logger
}

// StartHTTPServer builds the router and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(deps HTTPServerDeps) (*http.Server, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		Cells:  view.NewCellResolver(),
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Reader:          deps.Reader,
		Contexts:        deps.Contexts,
		Renderer:        renderer,
		Logger:          logger,
		DefaultPageSize: deps.Config.View.DefaultPageSize,
		MaxPageSize:     deps.Config.View.MaxPageSize,
		RenderBudget:    deps.Config.Upstream.RenderBudget,
	})

	server := &http.Server{
		Addr:              deps.Config.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", serveErr)
		}
	}()

	return server, nil
}

// WaitForShutdown blocks until SIGINT/SIGTERM and then drains the server
// within the configured timeout.
func WaitForShutdown(server *http.Server, timeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	received := <-sig
	logger.Info("shutting down", "signal", received.String())

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
