package view

import (
	"github.com/modelgrid/modelgrid/internal/domain/model"
)

// DefaultPageSize is the page size used when the query string does not
// supply a positive limit.
const DefaultPageSize = 50

// State classifies a resolution. The three non-ready states are terminal
// for a render pass; recovery only happens through a new request.
type State int

const (
	// StateAwaitingRoute means the path segments are not resolved yet.
	StateAwaitingRoute State = iota
	// StateLoading means at least one fetch is still pending.
	StateLoading
	// StateUnavailable means a fetch settled without usable data.
	StateUnavailable
	// StateReady means the view configuration was fully derived.
	StateReady
)

// String returns the wire name of the state.
func (s State) String() string {
	switch s {
	case StateAwaitingRoute:
		return "awaiting_route"
	case StateLoading:
		return "loading"
	case StateUnavailable:
		return "unavailable"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ResolveInput carries everything a render pass knows: the route identity,
// the decoded query window, and the two fetch outcomes.
type ResolveInput struct {
	Identity model.RouteIdentity
	Query    model.PageQuery
	Schema   Result[model.Schema]
	Page     Result[model.Page]
	// PageSize overrides DefaultPageSize when the query carries no limit.
	// Zero means use DefaultPageSize.
	PageSize int
}

// Resolution is the outcome of a render pass. Config is non-nil only for
// StateReady. ModelName is set for StateLoading so the loading indicator
// can be annotated; Err carries the failure cause for StateUnavailable.
type Resolution struct {
	State     State
	ModelName string
	Err       error
	Config    *model.ViewConfiguration
}

// Resolve derives the list-view configuration from route, query, and
// fetch state. It raises no errors of its own: absent or pending data is
// modeled as a distinct state, never as a panic or exception.
//
// Precedence is fixed: awaiting route, then loading, then unavailable,
// then the happy path. No column or row derivation happens unless both
// fetches are ready.
func Resolve(in ResolveInput) Resolution {
	if !in.Identity.Complete() {
		return Resolution{State: StateAwaitingRoute}
	}

	if in.Schema.IsPending() || in.Page.IsPending() {
		return Resolution{State: StateLoading, ModelName: in.Identity.ModelName}
	}

	schema, schemaOK := in.Schema.Value()
	page, pageOK := in.Page.Value()
	if !schemaOK || !pageOK {
		err := in.Schema.Err()
		if err == nil {
			err = in.Page.Err()
		}
		return Resolution{State: StateUnavailable, ModelName: in.Identity.ModelName, Err: err}
	}

	// Both substitutions happen in the same pass: the page number is
	// computed with the already-resolved page size, so an offset supplied
	// without a limit is divided by the default size.
	pageSize := in.Query.Limit
	if pageSize <= 0 {
		pageSize = in.PageSize
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	activePage := in.Query.Offset / pageSize

	columns := deriveColumns(schema)

	return Resolution{
		State:     StateReady,
		ModelName: in.Identity.ModelName,
		Config: &model.ViewConfiguration{
			PageSize:       pageSize,
			ActivePage:     activePage,
			Columns:        columns,
			DefaultColumns: deriveDefaultColumns(schema, columns),
			Title:          HumanizeModelName(in.Identity.ModelName),
			Rows:           page.Results,
			TotalCount:     page.Count,
		},
	}
}

// deriveColumns emits one header per schema property, in document order.
func deriveColumns(schema model.Schema) []model.ColumnHeader {
	names := schema.Properties.Names()
	columns := make([]model.ColumnHeader, 0, len(names))
	for _, name := range names {
		field, _ := schema.Properties.Get(name)
		columns = append(columns, model.ColumnHeader{Name: name, Label: field.Title})
	}
	return columns
}

// deriveDefaultColumns maps list_display through the full column set by
// name. An empty list_display falls back to showing every column. Names
// that do not appear in the schema are skipped.
func deriveDefaultColumns(schema model.Schema, columns []model.ColumnHeader) []model.ColumnHeader {
	if len(schema.ListDisplay) == 0 {
		return columns
	}
	byName := make(map[string]model.ColumnHeader, len(columns))
	for _, c := range columns {
		byName[c.Name] = c
	}
	defaults := make([]model.ColumnHeader, 0, len(schema.ListDisplay))
	for _, name := range schema.ListDisplay {
		if c, ok := byName[name]; ok {
			defaults = append(defaults, c)
		}
	}
	return defaults
}
