// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/MKhiriev/go-env-json/models"
)

const (
	rootField       = "(root)"
	requiredKeyword = "required"
)

type schemaValidator struct{}

// NewSchemaValidator returns a [Validator] backed by gojsonschema. Drafts 4,
// 6 and 7 are supported; the draft is taken from the schema's "$schema"
// member.
func NewSchemaValidator() Validator {
	return schemaValidator{}
}

func (schemaValidator) Validate(document map[string]any, schema models.Schema) (models.ValidationResult, error) {
	if document == nil {
		document = map[string]any{}
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema.Document))
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	result, err := compiled.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	if result.Valid() {
		return models.ValidationResult{Valid: true}, nil
	}

	errs := make([]models.ValidationError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, models.ValidationError{
			Property: propertyPath(re),
			Message:  re.Description(),
			Kind:     re.Type(),
		})
	}

	return models.ValidationResult{Valid: false, Errors: errs}, nil
}

// propertyPath names the offending property. gojsonschema reports missing
// required members against their parent, so the member name is appended.
func propertyPath(re gojsonschema.ResultError) string {
	field := re.Field()
	if re.Type() != requiredKeyword {
		return field
	}

	property, ok := re.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == rootField {
		return property
	}

	return field + "." + property
}
