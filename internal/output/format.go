// Package output renders a resolved environment in the syntaxes consumed by
// shells, PHP-FPM pools and other tools.
package output

import (
	"fmt"
	"strings"
)

// Format selects the syntax produced by [Render].
type Format string

const (
	// Shell renders `export KEY="value"` lines.
	Shell Format = "shell"
	// FPM renders PHP-FPM pool `env[KEY] = "value"` lines.
	FPM Format = "fpm"
	// INI renders `KEY = "value"` lines.
	INI Format = "ini"
	// Dotenv renders a .env file.
	Dotenv Format = "dotenv"
	// YAML renders a YAML mapping.
	YAML Format = "yaml"
	// JSON renders an indented JSON object.
	JSON Format = "json"
)

// Formats lists every supported format, the default first.
var Formats = []Format{Shell, FPM, INI, Dotenv, YAML, JSON}

// ParseFormat returns the Format named s. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) String() string {
	return string(f)
}
