package httpx

import (
	"net/http"
	"net/url"
	"strconv"
)

// PaginationData contains pagination information for list views. The
// window is limit/offset based, matching the query contract.
type PaginationData struct {
	Limit      int
	Offset     int
	ActivePage int
	RowCount   int
	TotalCount int
	BasePath   string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder seeded with the page title.
func NewTemplateData(r *http.Request, title string) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: map[string]any{"Title": title},
		r:    r,
	}
}

// WithPagination adds pagination data and builds PrevURL/NextURL.
// Other query parameters present on the request are preserved in the
// generated links.
func (b *TemplateDataBuilder) WithPagination(opts PaginationData) *TemplateDataBuilder {
	hasPrev := opts.Offset > 0
	hasNext := opts.Offset+opts.RowCount < opts.TotalCount

	b.data["PageSize"] = opts.Limit
	b.data["ActivePage"] = opts.ActivePage
	b.data["TotalCount"] = opts.TotalCount
	b.data["HasPrev"] = hasPrev
	b.data["HasNext"] = hasNext
	if opts.RowCount > 0 {
		b.data["StartIndex"] = opts.Offset + 1
		b.data["EndIndex"] = opts.Offset + opts.RowCount
	} else {
		b.data["StartIndex"] = 0
		b.data["EndIndex"] = 0
	}

	if hasPrev {
		prevOffset := opts.Offset - opts.Limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		b.data["PrevURL"] = buildWindowURL(b.r, opts.BasePath, opts.Limit, prevOffset)
	}
	if hasNext {
		b.data["NextURL"] = buildWindowURL(b.r, opts.BasePath, opts.Limit, opts.Offset+opts.Limit)
	}
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// buildWindowURL rebuilds the request's query with the given window,
// preserving unrelated parameters.
func buildWindowURL(r *http.Request, basePath string, limit, offset int) string {
	q := url.Values{}
	if r != nil {
		q = r.URL.Query()
	}
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	} else {
		q.Del("offset")
	}
	if encoded := q.Encode(); encoded != "" {
		return basePath + "?" + encoded
	}
	return basePath
}
