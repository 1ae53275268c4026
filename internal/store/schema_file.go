package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-env-json/models"
)

// LoadSchema reads and parses env.schema.json from dir.
//
// The schema name is fixed and does not depend on the data file name used by
// the caller. The returned [models.Schema] keeps the declaration order of the
// "properties" members.
//
// Errors wrap [ErrSchemaNotFound], [ErrSchemaUnreadable] or
// [ErrSchemaMalformed] and always mention the schema path.
func LoadSchema(dir string) (models.Schema, error) {
	path := filepath.Join(dir, models.SchemaFileName)

	state, err := statFile(path)
	if err != nil {
		return models.Schema{}, fmt.Errorf("%w: %s: %w", ErrSchemaUnreadable, path, err)
	}
	switch state {
	case fileAbsent:
		return models.Schema{}, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
	case fileDirectory:
		return models.Schema{}, fmt.Errorf("%w: %s is a directory", ErrSchemaUnreadable, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Schema{}, fmt.Errorf("%w: %s: %w", ErrSchemaUnreadable, path, err)
	}

	doc, err := decodeObject(data)
	if err != nil {
		return models.Schema{}, fmt.Errorf("%w: %s: %w", ErrSchemaMalformed, path, err)
	}

	return models.Schema{
		Document:   doc,
		Properties: propertyNames(data),
		Path:       path,
	}, nil
}

// propertyNames extracts the ordered member names of the "properties"
// object. data has already been checked to be a JSON object.
func propertyNames(data []byte) []string {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil
	}

	raw, ok := members["properties"]
	if !ok {
		return nil
	}

	keys, ok := objectKeys(raw)
	if !ok {
		return nil
	}

	return keys
}
