package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/modelgrid/modelgrid/internal/core"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Reader   core.ModelReader
	Contexts *core.ContextStore
	Renderer *TemplateRenderer
	Logger   *slog.Logger

	DefaultPageSize int
	MaxPageSize     int
	RenderBudget    time.Duration
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	ui := &UIHandlers{
		Reader:          services.Reader,
		Contexts:        services.Contexts,
		Renderer:        services.Renderer,
		Logger:          services.Logger,
		DefaultPageSize: services.DefaultPageSize,
		MaxPageSize:     services.MaxPageSize,
		RenderBudget:    services.RenderBudget,
	}

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	mux.HandleFunc("GET /api/views/{app}/{model}", ui.ViewConfig)
	mux.HandleFunc("GET /api/views/{app}/{model}/{$}", ui.ViewConfig)

	// Route resolution is incomplete until both segments are present.
	mux.HandleFunc("GET /{$}", ui.AwaitingRoute)
	mux.HandleFunc("GET /{app}", ui.AwaitingRoute)
	mux.HandleFunc("GET /{app}/{$}", ui.AwaitingRoute)

	mux.HandleFunc("GET /{app}/{model}", ui.ListView)
	mux.HandleFunc("GET /{app}/{model}/{$}", ui.ListView)

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = RequestID()(handler)
	handler = Recover(logger)(handler)
	return handler
}
