package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// JSON Schemas for the bundled catalog files. Kept permissive about
// unknown fields so authored content can carry extra metadata.
const (
	drillsSchemaJSON = `{
		"type": "object",
		"required": ["drills"],
		"properties": {
			"drills": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id", "title", "ageBands", "timeLimitSeconds", "obstacleCount", "domain", "skillTags"],
					"properties": {
						"id": {"type": "string", "minLength": 1},
						"title": {"type": "string", "minLength": 1},
						"description": {"type": "string"},
						"ageBands": {
							"type": "array",
							"minItems": 1,
							"items": {"enum": ["6-8", "9-11", "12-13", "14-15", "16-19"]}
						},
						"timeLimitSeconds": {"type": "integer", "minimum": 1},
						"obstacleCount": {"type": "integer", "minimum": 0},
						"domain": {"enum": ["attack", "defence", "transition"]},
						"skillTags": {"type": "array", "items": {"type": "string"}}
					}
				}
			}
		}
	}`

	scenariosSchemaJSON = `{
		"type": "object",
		"required": ["scenarios"],
		"properties": {
			"scenarios": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id", "title", "tags"],
					"properties": {
						"id": {"type": "string", "minLength": 1},
						"title": {"type": "string", "minLength": 1},
						"description": {"type": "string"},
						"ageBands": {
							"type": "array",
							"items": {"enum": ["6-8", "9-11", "12-13", "14-15", "16-19"]}
						},
						"domain": {"enum": ["attack", "defence", "transition"]},
						"difficulty": {"type": "integer", "minimum": 1, "maximum": 5},
						"tags": {"type": "array", "items": {"type": "string"}}
					}
				}
			}
		}
	}`
)

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(definition), &parsed); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add schema resource %q: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// validateJSON checks raw catalog bytes against a named schema.
func validateJSON(name, definition string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
