package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PathError reports a dotted-path segment that could not be resolved.
type PathError struct {
	Segment string
	Index   bool
}

func (e *PathError) Error() string {
	if e.Index {
		return fmt.Sprintf("array index %s not found", e.Segment)
	}
	return fmt.Sprintf("key %q not found", e.Segment)
}

// ExtractJSONPath resolves a dotted path like "a.b.1" against a JSON
// document. Empty segments are skipped; a segment that parses as a
// non-negative integer indexes into an array, anything else looks up an
// object key. The returned value uses encoding/json's generic types.
func ExtractJSONPath(jsonText, path string) (any, error) {
	var doc any
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	current := doc
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}

		if index, err := strconv.Atoi(segment); err == nil && index >= 0 {
			arr, ok := current.([]any)
			if !ok || index >= len(arr) {
				return nil, &PathError{Segment: segment, Index: true}
			}
			current = arr[index]
			continue
		}

		obj, ok := current.(map[string]any)
		if !ok {
			return nil, &PathError{Segment: segment}
		}
		value, ok := obj[segment]
		if !ok {
			return nil, &PathError{Segment: segment}
		}
		current = value
	}

	return current, nil
}

// IsValidJSON reports whether s is a syntactically valid JSON document.
func IsValidJSON(s string) bool {
	return json.Valid([]byte(s))
}
