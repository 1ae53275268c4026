package environ

import (
	"github.com/MKhiriev/go-env-json/models"
)

// Collect reads the variables declared in schema's properties from env.
//
// Only variables that are set are included; a variable set to the empty
// string is kept. The result follows the schema declaration order. A schema
// without an object "properties" member yields an empty [models.Env].
func Collect(env Environment, schema models.Schema) *models.Env {
	collected := models.NewEnv()
	for _, name := range schema.Properties {
		if value, ok := env.LookupEnv(name); ok {
			collected.Set(name, value)
		}
	}

	return collected
}
