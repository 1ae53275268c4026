// Package store reads env.schema.json and the env data files of a
// configuration directory.
package store

import (
	"github.com/MKhiriev/go-env-json/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_storage_mock.go -package=mock

// ConfigStorage reads configuration documents from a directory.
type ConfigStorage interface {
	// LoadSchema reads env.schema.json from dir.
	LoadSchema(dir string) (models.Schema, error)
	// LoadEnvFiles reads name and its dist file from dir and merges them.
	LoadEnvFiles(dir, name string) (models.EnvData, error)
}
