package store

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-env-json/models"
)

const (
	jsonSuffix     = ".json"
	distJSONSuffix = ".dist.json"
)

// DistFileName derives the dist file name from a data file name by replacing
// its ".json" suffix with ".dist.json" ("env.json" becomes "env.dist.json").
// Names without the suffix get ".dist.json" appended.
func DistFileName(name string) string {
	return strings.TrimSuffix(name, jsonSuffix) + distJSONSuffix
}

// LoadEnvFiles reads the data file name and its dist counterpart from dir and
// merges them with [MergeEnvData].
//
// Either file may be absent; when both are, an empty [models.EnvData] is
// returned without error. A file that exists but is a directory, cannot be
// read, is not valid JSON or is not a JSON object fails the whole load.
func LoadEnvFiles(dir, name string) (models.EnvData, error) {
	primary, err := loadEnvFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	dist, err := loadEnvFile(filepath.Join(dir, DistFileName(name)))
	if err != nil {
		return nil, err
	}

	return MergeEnvData(primary, dist)
}

// MergeEnvData merges dist over primary. Values from dist replace same-named
// values from primary, keys only present in one of them are kept. Neither
// argument is modified at the top level.
func MergeEnvData(primary, dist models.EnvData) (models.EnvData, error) {
	merged := make(models.EnvData, len(primary)+len(dist))
	maps.Copy(merged, primary)

	if len(dist) == 0 {
		return merged, nil
	}
	if err := mergo.Merge(&merged, dist, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging env files: %w", err)
	}

	return merged, nil
}

// loadEnvFile returns nil data and a nil error when path does not exist.
func loadEnvFile(path string) (models.EnvData, error) {
	state, err := statFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotReadable, path, err)
	}
	switch state {
	case fileAbsent:
		return nil, nil
	case fileDirectory:
		return nil, fmt.Errorf("%w: %s", ErrFileIsDirectory, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotReadable, path, err)
	}

	obj, err := decodeObject(data)
	if errors.Is(err, errNotObject) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedJSON, path, err)
	}

	return obj, nil
}
