// Package export renders a preferences tree as JSON, YAML or TOML.
//
// Groups become nested objects and entries become string values. When an
// entry and a child group share a name, the group is keyed with a trailing
// '/' ("window/") so neither hides the other. Comments are not exported.
package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/prefkit/internal/prefstext"
	"github.com/joshuapare/prefkit/store"
)

// DefaultIndentSize is the indentation of JSON and YAML output.
const DefaultIndentSize = 2

// Format specifies the output format.
type Format string

const (
	// FormatJSON outputs a JSON object in file order.
	FormatJSON Format = "json"

	// FormatYAML outputs a YAML mapping in file order.
	FormatYAML Format = "yaml"

	// FormatTOML outputs TOML tables. TOML encoders sort keys, so file
	// order is not kept.
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates a format name. Matching is case-insensitive and
// "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, yaml or toml)", name)
}

// Render writes the subtree below top to w.
func Render(w io.Writer, top *store.Node, format Format) error {
	obj := build(top)
	switch format {
	case FormatJSON:
		return renderJSON(w, obj)
	case FormatYAML:
		return renderYAML(w, obj)
	case FormatTOML:
		return renderTOML(w, obj)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// member is one key of an object. Value is a string or an object.
type member struct {
	Key   string
	Value any
}

// object keeps its members in file order.
type object []member

// build converts n to an object. A group whose name is already taken by an
// entry (or by an earlier key) gets '/' appended until its key is unique.
func build(n *store.Node) object {
	obj := make(object, 0, n.NumEntries()+n.NumChildren())
	used := make(map[string]bool, cap(obj))
	for _, e := range n.Entries() {
		obj = append(obj, member{Key: e.Name, Value: text(e.Value)})
		used[e.Name] = true
	}
	for _, c := range n.Children() {
		key := c.Name()
		for used[key] {
			key += store.PathSeparator
		}
		used[key] = true
		obj = append(obj, member{Key: key, Value: build(c)})
	}
	return obj
}

// text makes a stored value printable. Values holding bytes that are not
// UTF-8 are shown in their escaped file form.
func text(v string) string {
	if utf8.ValidString(v) {
		return v
	}
	return prefstext.EscapeValue(v)
}
