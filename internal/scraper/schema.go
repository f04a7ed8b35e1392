package scraper

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// itemSchema gates dataset items before mapping. Every field is optional,
// matching the actor's sparse output, but present fields must carry the
// expected shape so a malformed payload fails loudly instead of mapping to a
// silently empty profile.
const itemSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "fullName": {"type": "string"},
    "headline": {"type": "string"},
    "location": {"type": "string"},
    "summary": {"type": "string"},
    "connectionsCount": {"type": ["integer", "null"]},
    "followersCount": {"type": ["integer", "null"]},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "companyName": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": ["string", "null"]},
          "description": {"type": "string"},
          "location": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "schoolName": {"type": "string"},
          "degreeName": {"type": "string"},
          "fieldOfStudy": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "grade": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "anyOf": [
          {"type": "string"},
          {"type": "object", "properties": {"name": {"type": "string"}}}
        ]
      }
    },
    "languages": {"type": "array", "items": {"type": "string"}},
    "certifications": {"type": "array", "items": {"type": "string"}}
  }
}`

// ValidationError carries the per-field schema violations for one item.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("dataset item validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	compileSchemaOnce sync.Once
	compiledSchema    *gojsonschema.Schema
	compileSchemaErr  error
)

func compiledItemSchema() (*gojsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiledSchema, compileSchemaErr = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(itemSchema))
	})
	return compiledSchema, compileSchemaErr
}

// validateItem checks one raw dataset item against the item schema.
func validateItem(item json.RawMessage) error {
	schema, err := compiledItemSchema()
	if err != nil {
		return fmt.Errorf("failed to compile dataset item schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(item))
	if err != nil {
		return fmt.Errorf("failed to validate dataset item: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
