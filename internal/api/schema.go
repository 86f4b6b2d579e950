package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchemaJSON is the minimum shape a submit response must satisfy
// before its AI fields are trusted. A response failing this check is
// treated the same as a malformed body: the caller falls back to
// locally computed results.
const resultSchemaJSON = `{
	"type": "object",
	"required": ["ai_summary", "top_strengths", "growth_recommendation"],
	"properties": {
		"ai_summary": {"type": "string"},
		"top_strengths": {"type": "array", "items": {"type": "string"}},
		"growth_recommendation": {"type": "string"},
		"category_scores": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"category": {"type": "string"},
					"score": {"type": "number"},
					"question_count": {"type": "integer"}
				}
			}
		}
	}
}`

var (
	resultSchemaOnce sync.Once
	resultSchema     *jsonschema.Schema
	resultSchemaErr  error
)

// validateResult checks raw against the assessment result schema.
func validateResult(raw []byte) error {
	resultSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(resultSchemaJSON), &def); err != nil {
			resultSchemaErr = fmt.Errorf("parse result schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://assessment-result.json", def); err != nil {
			resultSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		resultSchema, resultSchemaErr = c.Compile("schema://assessment-result.json")
	})
	if resultSchemaErr != nil {
		return resultSchemaErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := resultSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
