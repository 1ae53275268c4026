package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-env-json/models"
)

var (
	// ErrInvalidEnvironment is matched by every [*InvalidEnvironmentError].
	ErrInvalidEnvironment = errors.New("invalid environment")
)

// InvalidEnvironmentError is returned by [Resolver.Load] when env data files
// were found but the resulting environment still violates the schema.
type InvalidEnvironmentError struct {
	// Errors lists every schema violation of the final environment.
	Errors []models.ValidationError
}

func (e *InvalidEnvironmentError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidEnvironment.Error())
	b.WriteString(":")
	for _, ve := range e.Errors {
		b.WriteString(" ")
		b.WriteString(ve.String())
		b.WriteString(";")
	}

	return b.String()
}

func (e *InvalidEnvironmentError) Unwrap() error {
	return ErrInvalidEnvironment
}
