package environ

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-env-json/models"
)

// Apply writes every scalar member of data into env, in key order.
//
// Keys starting with [models.MetadataPrefix] are skipped, as are null,
// object and array values. Scalars are converted with [ScalarString].
// The first variable the environment refuses aborts the write with an
// error wrapping [ErrSetenv]; variables written before it stay set.
func Apply(env Environment, data models.EnvData) error {
	for _, key := range slices.Sorted(maps.Keys(data)) {
		if strings.HasPrefix(key, models.MetadataPrefix) {
			continue
		}

		value, ok := ScalarString(data[key])
		if !ok {
			continue
		}

		if err := env.Setenv(key, value); err != nil {
			return fmt.Errorf("%w %q: %w", ErrSetenv, key, err)
		}
	}

	return nil
}

// ScalarString converts a decoded JSON scalar to its environment variable
// representation. Numbers keep their literal text and booleans become
// "true" or "false". ok is false for null, objects and arrays.
func ScalarString(v any) (s string, ok bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	case bool:
		return strconv.FormatBool(value), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(value), true
	default:
		return "", false
	}
}
