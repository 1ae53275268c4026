package iniconv

import "errors"

var (
	// ErrInvalidINI is returned when the INI file is missing or cannot be parsed.
	ErrInvalidINI = errors.New("failed to parse INI file")
)
