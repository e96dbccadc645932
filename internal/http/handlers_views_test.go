package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/modelgrid/modelgrid/internal/core"
	"github.com/modelgrid/modelgrid/internal/domain/model"
	apperrors "github.com/modelgrid/modelgrid/internal/errors"
	"github.com/modelgrid/modelgrid/internal/mocks"
)

func decodeViewResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestViewConfigReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockModelReader(ctrl)
	identity := model.RouteIdentity{AppName: "dcim", ModelName: "devices"}

	reader.EXPECT().GetSchema(gomock.Any(), identity).Return(deviceSchema(), nil)
	reader.EXPECT().
		ListRecords(gomock.Any(), identity, model.PageQuery{Limit: 25, Offset: 50}).
		Return(devicePage(), nil)

	router := newTestRouter(t, reader, core.NewContextStore())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/views/dcim/devices?limit=25&offset=50", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	body := decodeViewResponse(t, rec)
	assert.Equal(t, "ready", body["state"])
	assert.Equal(t, "devices", body["model_name"])

	viewCfg, ok := body["view"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(25), viewCfg["page_size"])
	assert.Equal(t, float64(2), viewCfg["active_page"])
	assert.Equal(t, "Devices", viewCfg["title"])
	assert.Equal(t, float64(37), viewCfg["total_count"])

	columns, ok := viewCfg["columns"].([]any)
	require.True(t, ok)
	require.Len(t, columns, 3)
	first, ok := columns[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "name", first["name"])
	assert.Equal(t, "Name", first["label"])

	defaults, ok := viewCfg["default_columns"].([]any)
	require.True(t, ok)
	assert.Len(t, defaults, 2)
}

func TestViewConfigInvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockModelReader(ctrl)

	router := newTestRouter(t, reader, core.NewContextStore())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/views/dcim/devices?limit=abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeViewResponse(t, rec)
	assert.Equal(t, "invalid_query", body["error"])
}

func TestViewConfigAwaitingRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockModelReader(ctrl)

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{Logger: discardLogger()})
	require.NoError(t, err)
	h := &UIHandlers{Reader: reader, Renderer: renderer, Logger: discardLogger()}

	// Route values absent: the request never went through the mux patterns.
	rec := httptest.NewRecorder()
	h.ViewConfig(rec, httptest.NewRequest(http.MethodGet, "/api/views/", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeViewResponse(t, rec)
	assert.Equal(t, "awaiting_route", body["state"])
}

func TestViewConfigUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockModelReader(ctrl)
	identity := model.RouteIdentity{AppName: "dcim", ModelName: "devices"}

	reader.EXPECT().GetSchema(gomock.Any(), identity).
		Return(model.Schema{}, apperrors.NotFound("model dcim/devices is not registered"))
	reader.EXPECT().ListRecords(gomock.Any(), identity, gomock.Any()).Return(model.Page{}, nil)

	router := newTestRouter(t, reader, core.NewContextStore())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/views/dcim/devices", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeViewResponse(t, rec)
	assert.Equal(t, "unavailable", body["state"])
	assert.NotContains(t, body, "view")
}

func TestViewConfigLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockModelReader(ctrl)
	identity := model.RouteIdentity{AppName: "dcim", ModelName: "devices"}

	reader.EXPECT().GetSchema(gomock.Any(), identity).
		DoAndReturn(func(ctx context.Context, _ model.RouteIdentity) (model.Schema, error) {
			<-ctx.Done()
			return model.Schema{}, ctx.Err()
		})
	reader.EXPECT().ListRecords(gomock.Any(), identity, gomock.Any()).Return(devicePage(), nil)

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{Logger: discardLogger()})
	require.NoError(t, err)
	router := NewRouter(RouterServices{
		Reader:       reader,
		Contexts:     core.NewContextStore(),
		Renderer:     renderer,
		Logger:       discardLogger(),
		RenderBudget: 20 * time.Millisecond,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/views/dcim/devices", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeViewResponse(t, rec)
	assert.Equal(t, "loading", body["state"])
	assert.Equal(t, "devices", body["model_name"])
}

func TestViewConfigPublishesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockModelReader(ctrl)
	identity := model.RouteIdentity{AppName: "dcim", ModelName: "devices"}

	reader.EXPECT().GetSchema(gomock.Any(), identity).Return(deviceSchema(), nil)
	reader.EXPECT().ListRecords(gomock.Any(), identity, gomock.Any()).Return(devicePage(), nil)

	contexts := core.NewContextStore()
	router := newTestRouter(t, reader, contexts)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/views/dcim/devices", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	current, ok := contexts.Current()
	require.True(t, ok)
	assert.Equal(t, identity, current)
}
