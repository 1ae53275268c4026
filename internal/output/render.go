package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-env-json/models"
)

var (
	quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	shellEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")
)

// Render writes env to w in format. Line based formats emit one line per
// variable in the order of env; an empty env produces no output at all.
func Render(w io.Writer, env *models.Env, format Format) error {
	if env.Len() == 0 {
		if _, err := ParseFormat(string(format)); err != nil {
			return err
		}
		return nil
	}

	var (
		out []byte
		err error
	)
	switch format {
	case Shell:
		out = renderLines(env, func(k, v string) string {
			return fmt.Sprintf("export %s=\"%s\"", k, shellEscaper.Replace(v))
		})
	case FPM:
		out = renderLines(env, func(k, v string) string {
			return fmt.Sprintf("env[%s] = \"%s\"", k, quoteEscaper.Replace(v))
		})
	case INI:
		out = renderLines(env, func(k, v string) string {
			return fmt.Sprintf("%s = \"%s\"", k, quoteEscaper.Replace(v))
		})
	case Dotenv:
		out, err = renderDotenv(env)
	case YAML:
		out, err = renderYAML(env)
	case JSON:
		out, err = renderJSON(env)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", format, err)
	}

	_, err = w.Write(out)
	return err
}

func renderLines(env *models.Env, line func(k, v string) string) []byte {
	var buf bytes.Buffer
	for _, name := range env.Names() {
		v, _ := env.Get(name)
		buf.WriteString(line(name, v))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// renderDotenv sorts variables by name.
func renderDotenv(env *models.Env) ([]byte, error) {
	content, err := godotenv.Marshal(env.Map())
	if err != nil {
		return nil, err
	}

	return []byte(content + "\n"), nil
}

func renderYAML(env *models.Env) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range env.Names() {
		v, _ := env.Get(name)
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
		)
	}

	return yaml.Marshal(doc)
}

func renderJSON(env *models.Env) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(env); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
