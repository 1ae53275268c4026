package validators

import "errors"

var (
	// ErrInvalidSchema is returned when the schema document cannot be
	// compiled, e.g. "required" is not an array of strings.
	ErrInvalidSchema = errors.New("invalid json schema")
)
