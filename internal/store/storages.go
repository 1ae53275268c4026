package store

import "github.com/MKhiriev/go-env-json/models"

type fileConfigStorage struct{}

// NewConfigStorage returns the file system backed [ConfigStorage].
func NewConfigStorage() ConfigStorage {
	return fileConfigStorage{}
}

func (fileConfigStorage) LoadSchema(dir string) (models.Schema, error) {
	return LoadSchema(dir)
}

func (fileConfigStorage) LoadEnvFiles(dir, name string) (models.EnvData, error) {
	return LoadEnvFiles(dir, name)
}
