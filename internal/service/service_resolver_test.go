package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-env-json/internal/environ"
	"github.com/MKhiriev/go-env-json/internal/logger"
	"github.com/MKhiriev/go-env-json/internal/mock"
	"github.com/MKhiriev/go-env-json/internal/store"
	"github.com/MKhiriev/go-env-json/internal/validators"
	"github.com/MKhiriev/go-env-json/models"
)

const requireFooSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["FOO"],
	"properties": {
		"FOO": {"type": "string"},
		"BAR": {"type": "string"}
	}
}`

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func newFileResolver(env environ.Environment) Resolver {
	return NewResolver(store.NewConfigStorage(), env, validators.NewSchemaValidator(), logger.Nop())
}

func fooSchema() models.Schema {
	return models.Schema{
		Document: map[string]any{
			"type":       "object",
			"required":   []any{"FOO"},
			"properties": map[string]any{"FOO": map[string]any{"type": "string"}},
		},
		Properties: []string{"FOO"},
		Path:       "cfg/env.schema.json",
	}
}

// ─────────────────────────────────────────────
// NewResolver
// ─────────────────────────────────────────────

func TestNewResolver_NilLoggerIsReplaced(t *testing.T) {
	r := NewResolver(store.NewConfigStorage(), environ.NewMap(nil), validators.NewSchemaValidator(), nil)

	require.NotNil(t, r)
	assert.NotNil(t, r.(*resolver).logger)
}

// ─────────────────────────────────────────────
// Load with real files
// ─────────────────────────────────────────────

func TestLoad_EnvironmentTakesPrecedence(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	env := environ.NewMap(map[string]string{"FOO": "x"})

	// Act
	got, err := newFileResolver(env).Load(dir, "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "x"}, got.Map())
}

func TestLoad_EnvironmentTakesPrecedenceOverFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	writeFile(t, dir, "env.json", `{"FOO": "from-file", "BAR": "from-file"}`)
	env := environ.NewMap(map[string]string{"FOO": "from-env"})

	got, err := newFileResolver(env).Load(dir, "env.json")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "from-env"}, got.Map())
	_, ok := env.LookupEnv("BAR")
	assert.False(t, ok, "files must not be applied when the environment is valid")
}

func TestLoad_FallbackToFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	writeFile(t, dir, "env.json", `{"$schema": "./env.schema.json", "FOO": "foo-val"}`)
	env := environ.NewMap(nil)

	// Act
	got, err := newFileResolver(env).Load(dir, "env.json")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "foo-val"}, got.Map())
	assert.Equal(t, map[string]string{"FOO": "foo-val"}, env.Vars())
}

func TestLoad_DistOverridesPrimary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	writeFile(t, dir, "env.json", `{"FOO": "primary", "BAR": "primary"}`)
	writeFile(t, dir, "env.dist.json", `{"FOO": "dist"}`)
	env := environ.NewMap(nil)

	got, err := newFileResolver(env).Load(dir, "env.json")

	require.NoError(t, err)
	assert.Equal(t, []string{"FOO", "BAR"}, got.Names())
	assert.Equal(t, map[string]string{"FOO": "dist", "BAR": "primary"}, got.Map())
}

func TestLoad_CustomFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	writeFile(t, dir, "env.json", `{"FOO": "default-file"}`)
	writeFile(t, dir, "custom.env.json", `{"FOO": "custom-file"}`)

	got, err := newFileResolver(environ.NewMap(nil)).Load(dir, "custom.env.json")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "custom-file"}, got.Map())
}

func TestLoad_InvalidFileFails(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	writeFile(t, dir, "env.json", `{"BAR": "x"}`)

	// Act
	got, err := newFileResolver(environ.NewMap(nil)).Load(dir, "env.json")

	// Assert
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrInvalidEnvironment)

	var invalid *InvalidEnvironmentError
	require.True(t, errors.As(err, &invalid))
	require.Len(t, invalid.Errors, 1)
	assert.Equal(t, "FOO", invalid.Errors[0].Property)
	assert.Equal(t, "required", invalid.Errors[0].Kind)
	assert.Contains(t, err.Error(), "[FOO]")
}

func TestLoad_InvalidDistFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", `{
		"type": "object",
		"required": ["PORT"],
		"properties": {"PORT": {"type": "string", "pattern": "^[0-9]+$"}}
	}`)
	writeFile(t, dir, "env.dist.json", `{"PORT": "not-a-port"}`)

	_, err := newFileResolver(environ.NewMap(nil)).Load(dir, "env.json")

	require.ErrorIs(t, err, ErrInvalidEnvironment)
}

func TestLoad_NoFilesReturnsEmpty(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	env := environ.NewMap(map[string]string{"BAR": "set-but-not-enough"})

	// Act
	got, err := newFileResolver(env).Load(dir, "env.json")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Zero(t, got.Len())
}

func TestLoad_EmptyFileFailsLikeAnyOtherFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	writeFile(t, dir, "env.json", `{"$schema": "./env.schema.json"}`)

	_, err := newFileResolver(environ.NewMap(nil)).Load(dir, "env.json")

	require.ErrorIs(t, err, ErrInvalidEnvironment)
}

func TestLoad_MetadataIsNotWritten(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	writeFile(t, dir, "env.json", `{"$schema": "./env.schema.json", "$comment": "x", "FOO": "v"}`)
	env := environ.NewMap(nil)

	_, err := newFileResolver(env).Load(dir, "env.json")

	require.NoError(t, err)
	_, ok := env.LookupEnv("$schema")
	assert.False(t, ok)
	_, ok = env.LookupEnv("$comment")
	assert.False(t, ok)
}

func TestLoad_NonStringValuesAreCoerced(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", `{
		"type": "object",
		"required": ["PORT", "DEBUG"],
		"properties": {"PORT": {"type": "string"}, "DEBUG": {"type": "string"}}
	}`)
	writeFile(t, dir, "env.json", `{"PORT": 8080, "DEBUG": false, "NESTED": {"A": 1}}`)
	env := environ.NewMap(nil)

	got, err := newFileResolver(env).Load(dir, "env.json")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PORT": "8080", "DEBUG": "false"}, got.Map())
	assert.NotContains(t, env.Vars(), "NESTED")
}

func TestLoad_StoreErrorsPropagate(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "schema not found",
			wantErr: store.ErrSchemaNotFound,
		},
		{
			name:    "schema malformed",
			files:   map[string]string{"env.schema.json": `{"type": `},
			wantErr: store.ErrSchemaMalformed,
		},
		{
			name:    "invalid schema keyword",
			files:   map[string]string{"env.schema.json": `{"properties": {"FOO": {}}, "required": "FOO"}`},
			wantErr: store.ErrSchemaMalformed,
		},
		{
			name: "malformed env file",
			files: map[string]string{
				"env.schema.json": requireFooSchema,
				"env.json":        `{"FOO": `,
			},
			wantErr: store.ErrMalformedJSON,
		},
		{
			name: "env file not an object",
			files: map[string]string{
				"env.schema.json": requireFooSchema,
				"env.dist.json":   `["FOO"]`,
			},
			wantErr: store.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tt.files {
				writeFile(t, dir, name, body)
			}

			got, err := newFileResolver(environ.NewMap(nil)).Load(dir, "env.json")

			assert.Nil(t, got)
			require.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrInvalidEnvironment)
		})
	}
}

func TestLoad_EnvFileIsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "env.schema.json", requireFooSchema)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "env.json"), 0o755))

	_, err := newFileResolver(environ.NewMap(nil)).Load(dir, "env.json")

	require.ErrorIs(t, err, store.ErrFileIsDirectory)
}

// ─────────────────────────────────────────────
// Load with mocks
// ─────────────────────────────────────────────

func TestLoad_ValidEnvironmentNeverReadsFiles(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	storage.EXPECT().LoadSchema("cfg").Return(fooSchema(), nil)
	// no LoadEnvFiles expectation: a call fails the test

	r := NewResolver(storage, environ.NewMap(map[string]string{"FOO": "x"}), validators.NewSchemaValidator(), logger.Nop())

	// Act
	got, err := r.Load("cfg", "env.json")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "x"}, got.Map())
}

func TestLoad_DefaultsFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	gomock.InOrder(
		storage.EXPECT().LoadSchema("cfg").Return(fooSchema(), nil),
		storage.EXPECT().LoadEnvFiles("cfg", "env.json").Return(models.EnvData{"FOO": "v"}, nil),
	)

	r := NewResolver(storage, environ.NewMap(nil), validators.NewSchemaValidator(), logger.Nop())

	got, err := r.Load("cfg", "")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "v"}, got.Map())
}

func TestLoad_WritesFileValuesThroughEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	env := mock.NewMockEnvironment(ctrl)

	storage.EXPECT().LoadSchema("cfg").Return(fooSchema(), nil)
	storage.EXPECT().LoadEnvFiles("cfg", "env.json").Return(models.EnvData{"$schema": "./env.schema.json", "FOO": "v"}, nil)
	gomock.InOrder(
		env.EXPECT().LookupEnv("FOO").Return("", false),
		env.EXPECT().Setenv("FOO", "v").Return(nil),
		env.EXPECT().LookupEnv("FOO").Return("v", true),
	)

	r := NewResolver(storage, env, validators.NewSchemaValidator(), logger.Nop())

	got, err := r.Load("cfg", "env.json")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "v"}, got.Map())
}

func TestLoad_SetenvFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	env := mock.NewMockEnvironment(ctrl)

	storage.EXPECT().LoadSchema("cfg").Return(fooSchema(), nil)
	storage.EXPECT().LoadEnvFiles("cfg", "env.json").Return(models.EnvData{"FOO": "v"}, nil)
	env.EXPECT().LookupEnv("FOO").Return("", false)
	env.EXPECT().Setenv("FOO", "v").Return(errors.New("boom"))

	r := NewResolver(storage, env, validators.NewSchemaValidator(), logger.Nop())

	got, err := r.Load("cfg", "env.json")

	assert.Nil(t, got)
	require.ErrorIs(t, err, environ.ErrSetenv)
}

func TestLoad_ValidatorErrors(t *testing.T) {
	tests := []struct {
		name        string
		validateErr error
		wantErr     error
	}{
		{name: "invalid schema", validateErr: validators.ErrInvalidSchema, wantErr: store.ErrSchemaMalformed},
		{name: "other failure", validateErr: errors.New("engine failure"), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockConfigStorage(ctrl)
			validator := mock.NewMockValidator(ctrl)

			storage.EXPECT().LoadSchema("cfg").Return(fooSchema(), nil)
			validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(models.ValidationResult{}, tt.validateErr)

			r := NewResolver(storage, environ.NewMap(nil), validator, logger.Nop())

			got, err := r.Load("cfg", "env.json")

			assert.Nil(t, got)
			require.ErrorIs(t, err, tt.validateErr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "cfg/env.schema.json")
			}
		})
	}
}

func TestLoad_SchemaErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	storage.EXPECT().LoadSchema("cfg").Return(models.Schema{}, store.ErrSchemaUnreadable)

	r := NewResolver(storage, environ.NewMap(nil), mock.NewMockValidator(ctrl), logger.Nop())

	_, err := r.Load("cfg", "env.json")

	require.ErrorIs(t, err, store.ErrSchemaUnreadable)
	assert.Contains(t, err.Error(), "error loading schema")
}

func TestLoad_EnvFilesErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	storage.EXPECT().LoadSchema("cfg").Return(fooSchema(), nil)
	storage.EXPECT().LoadEnvFiles("cfg", "env.json").Return(nil, store.ErrFileNotReadable)

	r := NewResolver(storage, environ.NewMap(nil), validators.NewSchemaValidator(), logger.Nop())

	_, err := r.Load("cfg", "env.json")

	require.ErrorIs(t, err, store.ErrFileNotReadable)
}

// ─────────────────────────────────────────────
// InvalidEnvironmentError
// ─────────────────────────────────────────────

func TestInvalidEnvironmentError_Message(t *testing.T) {
	err := &InvalidEnvironmentError{Errors: []models.ValidationError{
		{Property: "FOO", Message: "FOO is required", Kind: "required"},
		{Property: "PORT", Message: "Invalid type. Expected: string, given: integer", Kind: "invalid_type"},
	}}

	assert.Equal(t,
		"invalid environment: [FOO] FOO is required; [PORT] Invalid type. Expected: string, given: integer;",
		err.Error())
	assert.ErrorIs(t, err, ErrInvalidEnvironment)
}
