// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SchemaFileName is the fixed name of the JSON Schema document inside a
// configuration directory, independent of the data file name.
const SchemaFileName = "env.schema.json"

// DefaultEnvFileName is the data file used when the caller does not name one.
const DefaultEnvFileName = "env.json"

// Schema is a parsed JSON Schema document describing the expected
// environment.
type Schema struct {
	// Document is the decoded schema, handed unchanged to the validator.
	Document map[string]any

	// Properties lists the names declared under "properties" in document
	// order. It is nil when "properties" is absent or is not an object.
	Properties []string

	// Path is the file the schema was read from.
	Path string
}
