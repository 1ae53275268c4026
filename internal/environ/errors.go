package environ

import "errors"

var (
	// ErrSetenv is returned by [Apply] when the environment rejects a
	// variable, e.g. a name containing '=' or a NUL byte.
	ErrSetenv = errors.New("error setting environment variable")

	// ErrInvalidName is returned by [Map.Setenv] for names the process
	// environment would refuse.
	ErrInvalidName = errors.New("invalid environment variable name")
)
