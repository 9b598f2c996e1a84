package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/schemax/internal/export"
	"github.com/usestring/schemax/pkg/schema"
)

const fieldsDoc = `{
	"name": "orders", "kind": "json", "root_type": "object",
	"created_at": "2026-08-31T00:00:00Z",
	"fields": {
		"$": {"types": ["object"], "count": 1, "optional": false, "array": false},
		"items.*": {"types": ["object"], "count": 3, "optional": false, "array": true},
		"items.*.a": {"types": ["integer"], "count": 3, "optional": false, "array": false},
		"items.*.b": {"types": ["string"], "count": 1, "optional": true, "array": false}
	}
}`

func TestRun_FieldLookup(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run([]byte(fieldsDoc), ".name", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"orders"}, result.Values)
	assert.Equal(t, 1, result.RawCount)
}

func TestRun_OptionalPaths(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run([]byte(fieldsDoc), ".fields | to_entries[] | select(.value.optional) | .key", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"items.*.b"}, result.Values)
}

func TestRun_TypesDeduplicate(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run([]byte(fieldsDoc), ".fields[].types[]", true, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"object", "integer", "string"}, result.Values)
	assert.Equal(t, 4, result.RawCount)
}

func TestRun_MaxResults(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run([]byte(fieldsDoc), ".fields | keys_unsorted[]", false, 2)
	require.NoError(t, err)
	assert.Len(t, result.Values, 2)
}

func TestRun_AgainstExportedSchema(t *testing.T) {
	s, err := schema.ExtractJSON("doc", []byte(`{"items": [{"a": 1}, {"a": 2}]}`))
	require.NoError(t, err)
	data, err := export.JSON(s, export.Options{Nodes: true})
	require.NoError(t, err)

	result, err := NewEngine().Run(data, `.nodes[] | select(.type == "integer") | .path`, false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"items.0.a", "items.1.a"}, result.Values)
}

func TestRun_InvalidExpression(t *testing.T) {
	_, err := NewEngine().Run([]byte(fieldsDoc), ".name[", false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jq expression")
}

func TestRun_InvalidDocument(t *testing.T) {
	_, err := NewEngine().Run([]byte(`{broken`), ".name", false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema document")
}

func TestRun_RuntimeError(t *testing.T) {
	result, err := NewEngine().Run([]byte(fieldsDoc), ".nodes[]", false, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Values)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cannot iterate over")
}

func TestValidateExpression(t *testing.T) {
	engine := NewEngine()

	assert.NoError(t, engine.ValidateExpression(".fields"))
	assert.NoError(t, engine.ValidateExpression(`.fields | to_entries[] | select(.value.array) | .key`))

	assert.Error(t, engine.ValidateExpression(".name["))
	assert.Error(t, engine.ValidateExpression("invalid("))
}
