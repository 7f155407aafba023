package export

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

func tomlMap(obj object) map[string]any {
	m := make(map[string]any, len(obj))
	for _, mem := range obj {
		if sub, ok := mem.Value.(object); ok {
			m[mem.Key] = tomlMap(sub)
			continue
		}
		m[mem.Key] = mem.Value
	}
	return m
}

func renderTOML(w io.Writer, obj object) error {
	return toml.NewEncoder(w).Encode(tomlMap(obj))
}
