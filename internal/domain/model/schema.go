package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldSchema describes a single model field as reported by the schema
// endpoint. Only the display title matters for column derivation; the
// remaining attributes are carried through untouched for completeness.
type FieldSchema struct {
	Title    string `json:"title"`
	Type     string `json:"type,omitempty"`
	ReadOnly bool   `json:"read_only,omitempty"`
}

// OrderedProperties is the schema's fieldName -> FieldSchema mapping with
// JSON document order preserved. Column order is defined as schema
// iteration order, so a plain map is not usable here.
type OrderedProperties struct {
	names  []string
	fields map[string]FieldSchema
}

// NewOrderedProperties builds an OrderedProperties from (name, field)
// pairs in the given order. Duplicate names keep their first position and
// take the last value.
func NewOrderedProperties(pairs ...OrderedProperty) OrderedProperties {
	op := OrderedProperties{fields: make(map[string]FieldSchema, len(pairs))}
	for _, p := range pairs {
		if _, seen := op.fields[p.Name]; !seen {
			op.names = append(op.names, p.Name)
		}
		op.fields[p.Name] = p.Field
	}
	return op
}

// OrderedProperty is a single (name, field) entry for NewOrderedProperties.
type OrderedProperty struct {
	Name  string
	Field FieldSchema
}

// Len returns the number of fields in the mapping.
func (op OrderedProperties) Len() int { return len(op.names) }

// Names returns the field names in document order. The returned slice is
// shared; callers must not mutate it.
func (op OrderedProperties) Names() []string { return op.names }

// Get looks up a field schema by name.
func (op OrderedProperties) Get(name string) (FieldSchema, bool) {
	f, ok := op.fields[name]
	return f, ok
}

// UnmarshalJSON decodes the properties object while recording key order,
// which encoding/json's map type would discard.
func (op *OrderedProperties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode properties: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode properties: expected object, got %v", tok)
	}

	op.names = nil
	op.fields = make(map[string]FieldSchema)
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return fmt.Errorf("decode properties key: %w", keyErr)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode properties key: expected string, got %v", keyTok)
		}

		var field FieldSchema
		if decErr := dec.Decode(&field); decErr != nil {
			return fmt.Errorf("decode properties field %q: %w", name, decErr)
		}

		if _, seen := op.fields[name]; !seen {
			op.names = append(op.names, name)
		}
		op.fields[name] = field
	}

	// Consume the closing brace.
	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("decode properties: %w", err)
	}
	return nil
}

// MarshalJSON encodes the mapping in its recorded order.
func (op OrderedProperties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range op.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(op.fields[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Schema is the server-provided description of a model: its fields with
// display titles, plus the subset/order chosen for default display.
type Schema struct {
	Properties  OrderedProperties `json:"properties"`
	ListDisplay []string          `json:"list_display"`
}

// ColumnHeader pairs a field name with its human-readable label for table
// rendering. Derived 1:1 from Schema.Properties in document order.
type ColumnHeader struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}
