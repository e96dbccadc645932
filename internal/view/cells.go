package view

import (
	"fmt"
	"strings"
	"sync"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// CellResolver extracts a display value for a column from a record.
// Simple field names are a map lookup; names containing a dot address
// nested record values ("site.name") and are evaluated as JMESPath
// expressions, compiled once and reused across rows.
type CellResolver struct {
	mu       sync.RWMutex
	compiled map[string]jmespath.JMESPath
}

// NewCellResolver creates a CellResolver with an empty expression cache.
func NewCellResolver() *CellResolver {
	return &CellResolver{compiled: make(map[string]jmespath.JMESPath)}
}

// Value returns the record's value for the named field. Missing fields
// and unparseable expressions yield nil rather than an error: a blank
// cell, not a failed render.
func (c *CellResolver) Value(record map[string]any, field string) any {
	if record == nil || field == "" {
		return nil
	}
	if !strings.Contains(field, ".") {
		return record[field]
	}

	expr, err := c.expression(field)
	if err != nil {
		return nil
	}
	v, err := expr.Search(record)
	if err != nil {
		return nil
	}
	return v
}

// Display renders a cell value as a string for HTML templates. Nested
// objects prefer their "display" or "name" member, matching the record
// shape of the upstream REST layer.
func (c *CellResolver) Display(record map[string]any, field string) string {
	v := c.Value(record, field)
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any:
		if s, ok := val["display"].(string); ok {
			return s
		}
		if s, ok := val["name"].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (c *CellResolver) expression(field string) (jmespath.JMESPath, error) {
	c.mu.RLock()
	expr, ok := c.compiled[field]
	c.mu.RUnlock()
	if ok {
		return expr, nil
	}

	compiled, err := jmespath.Compile(field)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.compiled[field] = compiled
	c.mu.Unlock()
	return compiled, nil
}
