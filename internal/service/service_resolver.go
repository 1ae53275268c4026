package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-env-json/internal/environ"
	"github.com/MKhiriev/go-env-json/internal/logger"
	"github.com/MKhiriev/go-env-json/internal/store"
	"github.com/MKhiriev/go-env-json/internal/validators"
	"github.com/MKhiriev/go-env-json/models"
)

// resolver is the concrete implementation of Resolver.
//
// It is not safe for concurrent use with anything else that reads or writes
// the same environment: Load reads env, writes file values into it and reads
// it again.
type resolver struct {
	// storage reads the schema and env data files.
	storage store.ConfigStorage

	// env is the environment variables are read from and written to.
	env environ.Environment

	// validator checks collected variables against the schema.
	validator validators.Validator

	logger *logger.Logger
}

// NewResolver constructs a Resolver. A nil logger is replaced by
// [logger.Nop].
func NewResolver(storage store.ConfigStorage, env environ.Environment, validator validators.Validator, log *logger.Logger) Resolver {
	if log == nil {
		log = logger.Nop()
	}

	return &resolver{
		storage:   storage,
		env:       env,
		validator: validator,
		logger:    log,
	}
}

// Load resolves the environment in two phases.
//
// First the schema-declared variables already present in the environment are
// validated and returned if they satisfy the schema; no data file is read in
// that case. Otherwise the data files are loaded, their scalar values written
// into the environment, and the variables collected and validated again.
//
// When the second validation fails, Load returns an empty [models.Env] if no
// data file provided any value, and an [*InvalidEnvironmentError] otherwise.
// Schema and file errors from [store] are returned wrapped.
func (r *resolver) Load(dir, name string) (*models.Env, error) {
	if name == "" {
		name = models.DefaultEnvFileName
	}

	log := r.logger.With().
		Str("resolution_id", uuid.NewString()).
		Str("dir", dir).
		Str("file", name).
		Logger()

	schema, err := r.storage.LoadSchema(dir)
	if err != nil {
		log.Debug().Err(err).Msg("schema loading failed")
		return nil, fmt.Errorf("error loading schema: %w", err)
	}

	collected, result, err := r.collect(schema)
	if err != nil {
		return nil, err
	}
	if result.Valid {
		log.Debug().Int("vars", collected.Len()).Msg("environment satisfies schema")
		return collected, nil
	}
	logViolations(log.Debug(), result).Msg("environment does not satisfy schema, loading env files")

	data, err := r.storage.LoadEnvFiles(dir, name)
	if err != nil {
		log.Debug().Err(err).Msg("env files loading failed")
		return nil, fmt.Errorf("error loading env files: %w", err)
	}

	if err = environ.Apply(r.env, data); err != nil {
		log.Debug().Err(err).Msg("writing env file values failed")
		return nil, fmt.Errorf("error applying env files: %w", err)
	}

	collected, result, err = r.collect(schema)
	if err != nil {
		return nil, err
	}
	if result.Valid {
		log.Debug().Int("vars", collected.Len()).Msg("environment satisfies schema after loading env files")
		return collected, nil
	}

	if len(data) == 0 {
		log.Debug().Msg("no env files found, returning empty environment")
		return models.NewEnv(), nil
	}

	logViolations(log.Debug(), result).Msg("env files do not satisfy schema")
	return nil, &InvalidEnvironmentError{Errors: result.Errors}
}

// collect reads the schema-declared variables and validates them.
func (r *resolver) collect(schema models.Schema) (*models.Env, models.ValidationResult, error) {
	collected := environ.Collect(r.env, schema)

	result, err := r.validator.Validate(collected.Document(), schema)
	if errors.Is(err, validators.ErrInvalidSchema) {
		return nil, models.ValidationResult{}, fmt.Errorf("error loading schema: %w: %s: %w", store.ErrSchemaMalformed, schema.Path, err)
	}
	if err != nil {
		return nil, models.ValidationResult{}, fmt.Errorf("error validating environment: %w", err)
	}

	return collected, result, nil
}

func logViolations(e *zerolog.Event, result models.ValidationResult) *zerolog.Event {
	violations := make([]string, 0, len(result.Errors))
	for _, ve := range result.Errors {
		violations = append(violations, ve.String())
	}

	return e.Strs("violations", violations)
}
