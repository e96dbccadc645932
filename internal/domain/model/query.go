package model

import (
	"net/url"
	"strconv"

	apperrors "github.com/modelgrid/modelgrid/internal/errors"
)

// PageQuery holds the pagination window decoded from the URL query string.
// A zero Limit means "not supplied"; callers substitute the configured
// default page size at resolve time. Offset defaults to 0.
type PageQuery struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// ParsePageQuery decodes and validates the limit/offset query parameters.
// Absent parameters are fine and leave the zero value in place. Malformed
// or negative values are rejected with a validation error rather than
// flowing through into page arithmetic.
func ParsePageQuery(q url.Values) (PageQuery, error) {
	var pq PageQuery

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return PageQuery{}, apperrors.ValidationField("limit", "limit must be a non-negative integer")
		}
		if n < 0 {
			return PageQuery{}, apperrors.ValidationField("limit", "limit must be non-negative")
		}
		pq.Limit = n
	}

	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return PageQuery{}, apperrors.ValidationField("offset", "offset must be a non-negative integer")
		}
		if n < 0 {
			return PageQuery{}, apperrors.ValidationField("offset", "offset must be non-negative")
		}
		pq.Offset = n
	}

	return pq, nil
}

// Clamp bounds the limit to maxLimit. A zero limit is preserved so the
// resolver can tell "absent" apart from an explicit value.
func (pq PageQuery) Clamp(maxLimit int) PageQuery {
	if maxLimit > 0 && pq.Limit > maxLimit {
		pq.Limit = maxLimit
	}
	return pq
}
