package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPath(t *testing.T) {
	doc := `{"a":{"b":[10,20,30]},"name":"cat","nested":{"deep":{"value":true}}}`

	tests := []struct {
		name     string
		path     string
		expected any
	}{
		{"array index", "a.b.1", float64(20)},
		{"object key", "name", "cat"},
		{"deep nesting", "nested.deep.value", true},
		{"empty segments skipped", "a..b.0", float64(10)},
		{"empty path returns document root", "", map[string]any{
			"a":      map[string]any{"b": []any{float64(10), float64(20), float64(30)}},
			"name":   "cat",
			"nested": map[string]any{"deep": map[string]any{"value": true}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ExtractJSONPath(doc, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestExtractJSONPath_Missing(t *testing.T) {
	doc := `{"a":{"b":[10,20,30]}}`

	tests := []struct {
		name string
		path string
	}{
		{"missing key", "a.c"},
		{"index out of range", "a.b.5"},
		{"index into object", "a.0"},
		{"key into array", "a.b.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSONPath(doc, tt.path)
			require.Error(t, err)

			var pathErr *PathError
			assert.ErrorAs(t, err, &pathErr)
		})
	}
}

func TestExtractJSONPath_ErrorNamesSegment(t *testing.T) {
	_, err := ExtractJSONPath(`{"a":1}`, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = ExtractJSONPath(`[1,2]`, "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array index 7")
}

func TestExtractJSONPath_InvalidJSON(t *testing.T) {
	_, err := ExtractJSONPath(`{not json`, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestIsValidJSON(t *testing.T) {
	assert.True(t, IsValidJSON(`{"a":1}`))
	assert.True(t, IsValidJSON(`[1,2,3]`))
	assert.True(t, IsValidJSON(`"text"`))
	assert.False(t, IsValidJSON(`{not json`))
	assert.False(t, IsValidJSON(``))
}
