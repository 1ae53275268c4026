package store

import "errors"

// Schema loading errors. Every error returned by [LoadSchema] wraps exactly
// one of these; callers should match with [errors.Is].
var (
	// ErrSchemaNotFound is returned when env.schema.json does not exist in
	// the configuration directory.
	ErrSchemaNotFound = errors.New("schema file not found")

	// ErrSchemaUnreadable is returned when the schema path exists but cannot
	// be read, either because of permissions or because it is a directory.
	ErrSchemaUnreadable = errors.New("schema file is not readable")

	// ErrSchemaMalformed is returned when the schema is not valid JSON or its
	// top level is not an object.
	ErrSchemaMalformed = errors.New("schema file is malformed")
)

// Env data file errors returned by [LoadEnvFiles]. A missing data file is not
// an error.
var (
	// ErrFileIsDirectory is returned when a data file path resolves to a
	// directory.
	ErrFileIsDirectory = errors.New("env file is a directory")

	// ErrFileNotReadable is returned when a data file exists but cannot be
	// opened or read.
	ErrFileNotReadable = errors.New("env file is not readable")

	// ErrMalformedJSON is returned when a data file is not syntactically
	// valid JSON.
	ErrMalformedJSON = errors.New("malformed json in env file")

	// ErrInvalidFormat is returned when a data file is valid JSON but its top
	// level is not an object.
	ErrInvalidFormat = errors.New("invalid env file format, expected an object")
)

var (
	errNotObject = errors.New("top level value is not an object")
)
