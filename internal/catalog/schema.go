package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Content schemas. Validation runs once at Load; the engine itself
// never re-checks field presence (missing difficulty aside, which
// defaults to 1 during indexing).

var conceptsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":   map[string]any{"type": "string", "minLength": 1},
			"name": map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"id", "name"},
		"additionalProperties": false,
	},
}

var itemsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":         map[string]any{"type": "string", "minLength": 1},
			"concept_id": map[string]any{"type": "string", "minLength": 1},
			"type":       map[string]any{"type": "string", "enum": []any{"mcq", "short"}},
			"stem":       map[string]any{"type": "string", "minLength": 1},
			"difficulty": map[string]any{"type": "integer", "minimum": 1},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer_index": map[string]any{"type": "integer", "minimum": 0},
			"answer":       map[string]any{"type": "string"},
			"misconception_key_indexes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer", "minimum": 0},
			},
			"misconception_tag": map[string]any{"type": "string"},
			"hint_basic":        map[string]any{"type": "string"},
			"hint_targeted":     map[string]any{"type": "string"},
		},
		"required":             []any{"id", "concept_id", "type", "stem"},
		"additionalProperties": false,
	},
}

var rulesSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"thresholds": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"weak":    map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"advance": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			},
			"required":             []any{"weak", "advance"},
			"additionalProperties": false,
		},
		"spaced_intervals_days": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"light":    intervalSchema,
				"standard": intervalSchema,
				"intense":  intervalSchema,
			},
			"required":             []any{"light", "standard", "intense"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"thresholds", "spaced_intervals_days"},
	"additionalProperties": false,
}

var intervalSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "integer", "minimum": 0},
}

var rosterSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"student_id": map[string]any{"type": "string", "minLength": 1},
			"name":       map[string]any{"type": "string", "minLength": 1},
			"mastery": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			},
			"flags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"student_id", "name", "mastery"},
		"additionalProperties": false,
	},
}

var seedsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":        map[string]any{"type": "string", "minLength": 1},
			"mode":      map[string]any{"type": "string", "enum": []any{"guided", "quiz"}},
			"intensity": map[string]any{"type": "string", "enum": []any{"light", "standard", "intense"}},
			"override_mastery": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			},
		},
		"required":             []any{"id"},
		"additionalProperties": false,
	},
}

func validateAll() error {
	checks := []struct {
		name   string
		schema map[string]any
		raw    []byte
	}{
		{"concepts", conceptsSchema, conceptsJSON},
		{"items", itemsSchema, itemsJSON},
		{"rules", rulesSchema, rulesJSON},
		{"roster", rosterSchema, rosterJSON},
		{"seeds", seedsSchema, seedsJSON},
	}
	for _, c := range checks {
		if err := validate(c.name, c.schema, c.raw); err != nil {
			return err
		}
	}
	return nil
}

// validate checks raw JSON against a schema definition.
func validate(name string, def map[string]any, raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: invalid JSON: %w", name, err)
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("%s: marshal schema: %w", name, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("%s: parse schema: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return fmt.Errorf("%s: add resource: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("%s: compile schema: %w", name, err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", name, err)
	}
	return nil
}
