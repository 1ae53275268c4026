package config

import "errors"

var (
	// ErrInvalidOptions indicates a conflicting or unusable option value
	// (for example, both --verbose and --quiet, or an unknown output format).
	ErrInvalidOptions = errors.New("invalid options")
)
