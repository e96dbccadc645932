package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgrid/modelgrid/internal/domain/model"
)

func deviceSchema() model.Schema {
	return model.Schema{
		Properties: model.NewOrderedProperties(
			model.OrderedProperty{Name: "name", Field: model.FieldSchema{Title: "Name"}},
			model.OrderedProperty{Name: "site", Field: model.FieldSchema{Title: "Site"}},
		),
		ListDisplay: []string{"name"},
	}
}

func devicePage(n, count int) model.Page {
	results := make([]model.Record, n)
	for i := range results {
		results[i] = model.Record{"name": "device", "site": "ams1"}
	}
	return model.Page{Results: results, Count: count}
}

func TestResolveAwaitingRoute(t *testing.T) {
	tests := []struct {
		name     string
		identity model.RouteIdentity
	}{
		{"both absent", model.RouteIdentity{}},
		{"model absent", model.RouteIdentity{AppName: "dcim"}},
		{"app absent", model.RouteIdentity{ModelName: "devices"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(ResolveInput{
				Identity: tt.identity,
				Schema:   Ready(deviceSchema()),
				Page:     Ready(devicePage(1, 1)),
			})
			assert.Equal(t, StateAwaitingRoute, res.State)
			assert.Nil(t, res.Config)
		})
	}
}

func TestResolveLoadingPrecedesDerivation(t *testing.T) {
	identity := model.RouteIdentity{AppName: "dcim", ModelName: "devices"}

	tests := []struct {
		name   string
		schema Result[model.Schema]
		page   Result[model.Page]
	}{
		{"schema pending", Pending[model.Schema](), Ready(devicePage(1, 1))},
		{"page pending", Ready(deviceSchema()), Pending[model.Page]()},
		{"both pending", Pending[model.Schema](), Pending[model.Page]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(ResolveInput{Identity: identity, Schema: tt.schema, Page: tt.page})
			assert.Equal(t, StateLoading, res.State)
			assert.Equal(t, "devices", res.ModelName)
			// No view fields are derived while loading.
			assert.Nil(t, res.Config)
		})
	}
}

func TestResolveUnavailable(t *testing.T) {
	identity := model.RouteIdentity{AppName: "dcim", ModelName: "devices"}
	fetchErr := errors.New("upstream down")

	tests := []struct {
		name   string
		schema Result[model.Schema]
		page   Result[model.Page]
	}{
		{"schema failed", Failed[model.Schema](fetchErr), Ready(devicePage(1, 1))},
		{"page failed", Ready(deviceSchema()), Failed[model.Page](fetchErr)},
		{"both failed", Failed[model.Schema](fetchErr), Failed[model.Page](fetchErr)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(ResolveInput{Identity: identity, Schema: tt.schema, Page: tt.page})
			assert.Equal(t, StateUnavailable, res.State)
			assert.ErrorIs(t, res.Err, fetchErr)
			assert.Nil(t, res.Config)
		})
	}
}

func TestResolvePageArithmetic(t *testing.T) {
	identity := model.RouteIdentity{AppName: "dcim", ModelName: "devices"}

	tests := []struct {
		name           string
		query          model.PageQuery
		wantPageSize   int
		wantActivePage int
	}{
		{"defaults", model.PageQuery{}, 50, 0},
		{"offset multiple of limit", model.PageQuery{Limit: 50, Offset: 100}, 50, 2},
		{"offset zero", model.PageQuery{Limit: 25}, 25, 0},
		{"offset without limit divides by default", model.PageQuery{Offset: 100}, 50, 2},
		{"offset not a multiple floors", model.PageQuery{Limit: 25, Offset: 60}, 25, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(ResolveInput{
				Identity: identity,
				Query:    tt.query,
				Schema:   Ready(deviceSchema()),
				Page:     Ready(devicePage(5, 500)),
			})
			require.Equal(t, StateReady, res.State)
			assert.Equal(t, tt.wantPageSize, res.Config.PageSize)
			assert.Equal(t, tt.wantActivePage, res.Config.ActivePage)
		})
	}
}

func TestResolveConfiguredDefaultPageSize(t *testing.T) {
	res := Resolve(ResolveInput{
		Identity: model.RouteIdentity{AppName: "dcim", ModelName: "devices"},
		Query:    model.PageQuery{Offset: 40},
		Schema:   Ready(deviceSchema()),
		Page:     Ready(devicePage(5, 100)),
		PageSize: 20,
	})
	require.Equal(t, StateReady, res.State)
	assert.Equal(t, 20, res.Config.PageSize)
	assert.Equal(t, 2, res.Config.ActivePage)
}

func TestResolveColumnsFollowSchemaOrder(t *testing.T) {
	schema := model.Schema{
		Properties: model.NewOrderedProperties(
			model.OrderedProperty{Name: "serial", Field: model.FieldSchema{Title: "Serial"}},
			model.OrderedProperty{Name: "name", Field: model.FieldSchema{Title: "Name"}},
			model.OrderedProperty{Name: "site", Field: model.FieldSchema{Title: "Site"}},
		),
	}
	res := Resolve(ResolveInput{
		Identity: model.RouteIdentity{AppName: "dcim", ModelName: "devices"},
		Schema:   Ready(schema),
		Page:     Ready(devicePage(0, 0)),
	})
	require.Equal(t, StateReady, res.State)
	require.Len(t, res.Config.Columns, 3)
	assert.Equal(t, []model.ColumnHeader{
		{Name: "serial", Label: "Serial"},
		{Name: "name", Label: "Name"},
		{Name: "site", Label: "Site"},
	}, res.Config.Columns)
}

func TestResolveDefaultColumns(t *testing.T) {
	t.Run("list display maps by name and preserves order", func(t *testing.T) {
		schema := deviceSchema()
		schema.ListDisplay = []string{"site", "name"}
		res := Resolve(ResolveInput{
			Identity: model.RouteIdentity{AppName: "dcim", ModelName: "devices"},
			Schema:   Ready(schema),
			Page:     Ready(devicePage(0, 0)),
		})
		require.Equal(t, StateReady, res.State)
		assert.Equal(t, []model.ColumnHeader{
			{Name: "site", Label: "Site"},
			{Name: "name", Label: "Name"},
		}, res.Config.DefaultColumns)
	})

	t.Run("empty list display falls back to all columns", func(t *testing.T) {
		schema := deviceSchema()
		schema.ListDisplay = []string{}
		res := Resolve(ResolveInput{
			Identity: model.RouteIdentity{AppName: "dcim", ModelName: "devices"},
			Schema:   Ready(schema),
			Page:     Ready(devicePage(0, 0)),
		})
		require.Equal(t, StateReady, res.State)
		assert.Equal(t, res.Config.Columns, res.Config.DefaultColumns)
	})

	t.Run("unknown list display names are skipped", func(t *testing.T) {
		schema := deviceSchema()
		schema.ListDisplay = []string{"name", "bogus"}
		res := Resolve(ResolveInput{
			Identity: model.RouteIdentity{AppName: "dcim", ModelName: "devices"},
			Schema:   Ready(schema),
			Page:     Ready(devicePage(0, 0)),
		})
		require.Equal(t, StateReady, res.State)
		assert.Equal(t, []model.ColumnHeader{{Name: "name", Label: "Name"}}, res.Config.DefaultColumns)
	})
}

func TestResolveEndToEnd(t *testing.T) {
	schema := model.Schema{
		Properties: model.NewOrderedProperties(
			model.OrderedProperty{Name: "name", Field: model.FieldSchema{Title: "Name"}},
			model.OrderedProperty{Name: "site", Field: model.FieldSchema{Title: "Site"}},
		),
		ListDisplay: []string{"name"},
	}
	page := devicePage(10, 37)

	res := Resolve(ResolveInput{
		Identity: model.RouteIdentity{AppName: "dcim", ModelName: "devices"},
		Query:    model.PageQuery{Limit: 25, Offset: 50},
		Schema:   Ready(schema),
		Page:     Ready(page),
	})

	require.Equal(t, StateReady, res.State)
	cfg := res.Config
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 2, cfg.ActivePage)
	assert.Equal(t, []model.ColumnHeader{
		{Name: "name", Label: "Name"},
		{Name: "site", Label: "Site"},
	}, cfg.Columns)
	assert.Equal(t, []model.ColumnHeader{{Name: "name", Label: "Name"}}, cfg.DefaultColumns)
	assert.Equal(t, "Devices", cfg.Title)
	assert.Equal(t, 37, cfg.TotalCount)
	assert.Len(t, cfg.Rows, 10)
}
