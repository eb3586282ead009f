package logs

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema describes the body accepted by create and replace. Every
// field is optional; unknown fields are tolerated and ignored.
const payloadSchema = `{
	"type": "object",
	"properties": {
		"title":    {"type": ["string", "null"], "maxLength": 255},
		"entries":  {"type": ["string", "null"]},
		"log_date": {"type": ["string", "null"], "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$", "format": "date"},
		"date":     {"type": ["string", "null"], "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$", "format": "date"},
		"tags":     {"type": ["array", "null"], "items": {"type": "string"}},
		"mood":     {"type": ["string", "null"], "maxLength": 64}
	}
}`

var payloadSchemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// validatePayload checks a decoded request body against payloadSchema.
func validatePayload(payload map[string]any) error {
	result, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewGoLoader(payload))
	if err != nil {
		return fmt.Errorf("validate payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return newValidationErrorWithDetails("Invalid request body", details)
}
