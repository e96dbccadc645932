package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedPropertiesPreservesDocumentOrder(t *testing.T) {
	// Keys chosen so map iteration order would scramble them.
	raw := `{
		"serial": {"title": "Serial"},
		"name": {"title": "Name"},
		"status": {"title": "Status"},
		"site": {"title": "Site"}
	}`

	var op OrderedProperties
	require.NoError(t, json.Unmarshal([]byte(raw), &op))

	assert.Equal(t, []string{"serial", "name", "status", "site"}, op.Names())
	assert.Equal(t, 4, op.Len())

	field, ok := op.Get("status")
	require.True(t, ok)
	assert.Equal(t, "Status", field.Title)
}

func TestOrderedPropertiesMarshalRoundTrip(t *testing.T) {
	op := NewOrderedProperties(
		OrderedProperty{Name: "name", Field: FieldSchema{Title: "Name"}},
		OrderedProperty{Name: "site", Field: FieldSchema{Title: "Site", Type: "object"}},
	)

	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":{"title":"Name"},"site":{"title":"Site","type":"object"}}`, string(data))

	var decoded OrderedProperties
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, op.Names(), decoded.Names())
}

func TestOrderedPropertiesRejectsNonObject(t *testing.T) {
	var op OrderedProperties
	assert.Error(t, json.Unmarshal([]byte(`["name"]`), &op))
}

func TestSchemaUnmarshal(t *testing.T) {
	raw := `{
		"properties": {
			"name": {"title": "Name"},
			"status": {"title": "Status", "read_only": true}
		},
		"list_display": ["name"]
	}`

	var s Schema
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, []string{"name", "status"}, s.Properties.Names())
	assert.Equal(t, []string{"name"}, s.ListDisplay)

	status, ok := s.Properties.Get("status")
	require.True(t, ok)
	assert.True(t, status.ReadOnly)
}
