// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates collected environments against their JSON
// Schema.
//
// Core concepts:
//   - Validator: checks a JSON document against a [models.Schema] and reports
//     every violation as a [models.ValidationError].
//
// A failed validation is not an error: it is reported through
// [models.ValidationResult]. Errors are reserved for schemas the engine
// cannot compile.
package validators

import "github.com/MKhiriev/go-env-json/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a decoded JSON document against a schema.
type Validator interface {
	// Validate checks document against schema.
	Validate(document map[string]any, schema models.Schema) (models.ValidationResult, error)
}
