// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ValidationError is a single schema violation.
type ValidationError struct {
	// Property is the offending property path, e.g. "FOO" or "(root)".
	Property string

	// Message is the human-readable reason, e.g. "FOO is required".
	Message string

	// Kind is the failed keyword, e.g. "required" or "invalid_type".
	Kind string
}

func (e ValidationError) String() string {
	return fmt.Sprintf("[%s] %s", e.Property, e.Message)
}

// ValidationResult is the outcome of validating a document against a schema.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}
