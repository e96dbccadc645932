package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/modelgrid/modelgrid/internal/core"
	"github.com/modelgrid/modelgrid/internal/domain/model"
	apperrors "github.com/modelgrid/modelgrid/internal/errors"
	"github.com/modelgrid/modelgrid/internal/view"
)

// loadingRefreshSeconds is the meta-refresh interval of the loading page.
const loadingRefreshSeconds = 2

// UIHandlers renders the model list views. All decision logic lives in
// the view resolver; these handlers only move data between the router,
// the reader, and the templates.
type UIHandlers struct {
	Reader   core.ModelReader
	Contexts *core.ContextStore
	Renderer *TemplateRenderer
	Logger   *slog.Logger

	// DefaultPageSize substitutes an absent limit. Zero means 50.
	DefaultPageSize int
	// MaxPageSize clamps caller-supplied limits. Zero means no clamp.
	MaxPageSize int
	// RenderBudget, when positive, bounds how long a render waits for the
	// two fetches before falling back to the loading view.
	RenderBudget time.Duration
}

// ListView renders the list page for /{app}/{model}.
func (h *UIHandlers) ListView(w http.ResponseWriter, r *http.Request) {
	identity := model.RouteIdentity{
		AppName:   r.PathValue("app"),
		ModelName: r.PathValue("model"),
	}

	pq, err := model.ParsePageQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.renderPage(w, "page_invalid", NewTemplateData(r, "Invalid request").
			WithError(err.Error()).
			Build())
		return
	}
	pq = pq.Clamp(h.MaxPageSize)

	res := h.resolve(r.Context(), identity, pq)
	h.renderResolution(w, r, renderCtx{Identity: identity, Resolution: res, Query: pq})
}

// AwaitingRoute renders the bare loading indicator for paths where the
// app or model segment has not been resolved.
func (h *UIHandlers) AwaitingRoute(w http.ResponseWriter, r *http.Request) {
	identity := model.RouteIdentity{AppName: r.PathValue("app")}
	res := view.Resolve(view.ResolveInput{Identity: identity})
	h.renderResolution(w, r, renderCtx{Identity: identity, Resolution: res})
}

// resolve runs the two fetches concurrently, classifies their outcomes,
// and hands everything to the view resolver. A fetch that exceeds the
// render budget while the request itself is still live is classified as
// pending, not failed.
func (h *UIHandlers) resolve(ctx context.Context, identity model.RouteIdentity, pq model.PageQuery) view.Resolution {
	if !identity.Complete() {
		return view.Resolve(view.ResolveInput{Identity: identity})
	}

	fetchCtx := ctx
	cancel := func() {}
	if h.RenderBudget > 0 {
		fetchCtx, cancel = context.WithTimeout(ctx, h.RenderBudget)
	}
	defer cancel()

	var (
		schemaRes view.Result[model.Schema]
		pageRes   view.Result[model.Page]
	)

	g, gctx := errgroup.WithContext(fetchCtx)
	g.Go(func() error {
		schema, err := h.Reader.GetSchema(gctx, identity)
		schemaRes = classify(fetchCtx, ctx, view.Ready(schema), err)
		return nil
	})
	g.Go(func() error {
		page, err := h.Reader.ListRecords(gctx, identity, pq)
		pageRes = classify(fetchCtx, ctx, view.Ready(page), err)
		return nil
	})
	// Goroutines never return errors; outcomes are carried in the Results.
	_ = g.Wait()

	return view.Resolve(view.ResolveInput{
		Identity: identity,
		Query:    pq,
		Schema:   schemaRes,
		Page:     pageRes,
		PageSize: h.DefaultPageSize,
	})
}

// classify turns a fetch outcome into a tagged Result. The pending
// classification applies only when the render budget's deadline is what
// expired: budgetCtx must be done while the request context is still
// alive. A fetch that timed out on its own is a settled failure.
func classify[T any](budgetCtx, reqCtx context.Context, ready view.Result[T], err error) view.Result[T] {
	if err == nil {
		return ready
	}
	if errors.Is(err, context.DeadlineExceeded) && budgetCtx.Err() != nil && reqCtx.Err() == nil {
		return view.Pending[T]()
	}
	return view.Failed[T](apperrors.MapUpstreamError(err))
}

// renderCtx consolidates parameters for rendering a resolution to keep
// the parameter count down.
type renderCtx struct {
	Identity   model.RouteIdentity
	Resolution view.Resolution
	Query      model.PageQuery
}

// renderResolution picks the template matching the resolution state.
func (h *UIHandlers) renderResolution(w http.ResponseWriter, r *http.Request, rc renderCtx) {
	res := rc.Resolution
	switch res.State {
	case view.StateAwaitingRoute:
		h.renderPage(w, "page_awaiting", NewTemplateData(r, "Loading").Build())

	case view.StateLoading:
		h.renderPage(w, "page_loading", NewTemplateData(r, "Loading").
			With("ModelName", res.ModelName).
			With("Refresh", loadingRefreshSeconds).
			Build())

	case view.StateUnavailable:
		h.logUnavailable(r, res)
		w.WriteHeader(statusForUnavailable(res.Err))
		h.renderPage(w, "page_unavailable", NewTemplateData(r, "Data unavailable").
			With("ModelName", res.ModelName).
			WithError("An error occurred while loading the data.").
			Build())

	case view.StateReady:
		cfg := res.Config
		if h.Contexts != nil {
			h.Contexts.Set(rc.Identity)
		}
		data := NewTemplateData(r, cfg.Title).
			WithPagination(PaginationData{
				Limit:      cfg.PageSize,
				Offset:     rc.Query.Offset,
				ActivePage: cfg.ActivePage,
				RowCount:   len(cfg.Rows),
				TotalCount: cfg.TotalCount,
				BasePath:   r.URL.Path,
			}).
			With("Columns", cfg.Columns).
			With("DefaultColumns", cfg.DefaultColumns).
			With("Rows", cfg.Rows).
			Build()
		h.renderPage(w, "page_list", data)
	}
}

func (h *UIHandlers) renderPage(w http.ResponseWriter, name string, data any) {
	if err := h.Renderer.RenderPage(w, name, data); err != nil && h.Logger != nil {
		h.Logger.Error("render failed", slog.String("template", name), slog.Any("error", err))
	}
}

func (h *UIHandlers) logUnavailable(r *http.Request, res view.Resolution) {
	if h.Logger == nil {
		return
	}
	h.Logger.WarnContext(r.Context(), "list data unavailable",
		slog.String("model", res.ModelName),
		slog.Any("error", res.Err),
	)
}

func statusForUnavailable(err error) int {
	if apperrors.IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
