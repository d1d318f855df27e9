// Package check validates response bodies against JSON Schema files.
package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/andrewatan/httpcall/packages/httpclient"
)

// ValidateSchema validates the response body against the JSON Schema at
// schemaPath. It returns nil when the document conforms, and an error
// listing every violation otherwise.
func ValidateSchema(resp *httpclient.Response, schemaPath string) error {
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("cannot read schema file %s: %w", schemaPath, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewStringLoader(resp.Body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(violations, "; "))
}
