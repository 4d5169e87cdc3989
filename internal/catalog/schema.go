// internal/catalog/schema.go
package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema describes the on-disk catalog document: an ordered
// array of scheme records. Structural checks live here; the cross-field
// invariants (region iff regional, ceiling units) live in validateRecord.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "description", "category", "scope", "keywords"],
    "properties": {
      "id": { "type": "string", "minLength": 1 },
      "name": { "$ref": "#/definitions/localizedText" },
      "description": { "$ref": "#/definitions/localizedText" },
      "eligibility": { "$ref": "#/definitions/localizedList" },
      "benefits": { "$ref": "#/definitions/localizedText" },
      "documents": { "$ref": "#/definitions/localizedList" },
      "applicationUrl": { "type": "string" },
      "category": { "type": "string", "enum": ["central", "state"] },
      "sponsor": { "type": "string" },
      "scope": { "type": "string", "enum": ["national", "regional"] },
      "region": { "type": "string" },
      "ageGroup": { "type": "string" },
      "incomeLimit": { "type": "string" },
      "gender": { "type": "string", "enum": ["male", "female", "all"] },
      "keywords": {
        "type": "array",
        "items": { "type": "string" }
      }
    }
  },
  "definitions": {
    "localizedText": {
      "type": "object",
      "required": ["hi", "en"],
      "properties": {
        "hi": { "type": "string" },
        "en": { "type": "string" }
      }
    },
    "localizedList": {
      "type": "object",
      "required": ["hi", "en"],
      "properties": {
        "hi": { "type": "array", "items": { "type": "string" } },
        "en": { "type": "array", "items": { "type": "string" } }
      }
    }
  }
}`

// ValidateDocument checks a raw catalog document against the schema.
func ValidateDocument(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("catalog validation failed: %v", errs)
	}

	return nil
}
