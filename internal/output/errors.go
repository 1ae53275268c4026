package output

import "errors"

var (
	// ErrUnknownFormat is returned for an output format name that is not
	// one of [Formats].
	ErrUnknownFormat = errors.New("unknown output format")
)
