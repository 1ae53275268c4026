// Package service resolves environments against their schema.
package service

import (
	"github.com/MKhiriev/go-env-json/models"
)

// Resolver resolves the environment described by a directory's
// env.schema.json.
type Resolver interface {
	// Load returns the schema-declared variables once they satisfy the
	// schema, taking them from the process environment first and from the
	// name data file (plus its dist file) in dir otherwise. An empty name
	// means env.json.
	Load(dir, name string) (*models.Env, error)
}
