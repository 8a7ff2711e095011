package common

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildAnalysisConfigSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. Analysis-config files are validated against it before use
// so a malformed config fails loudly instead of silently skewing a run.
func BuildAnalysisConfigSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"target_year": map[string]any{
				"type":    "integer",
				"minimum": 1970,
				"maximum": 9999,
			},
			"min_deposits_for_active": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"deposit_keywords": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
			"top_n": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
		},
	}
}

// ValidateAnalysisConfig validates raw JSON against the analysis-config
// schema.
func ValidateAnalysisConfig(data []byte) error {
	return validateJSONAgainstSchema(BuildAnalysisConfigSchema(), data)
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
