package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

func yamlNode(obj object) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, m := range obj {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key}
		var val *yaml.Node
		switch v := m.Value.(type) {
		case object:
			val = yamlNode(v)
		case string:
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
		}
		n.Content = append(n.Content, key, val)
	}
	return n
}

func renderYAML(w io.Writer, obj object) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(DefaultIndentSize)
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{yamlNode(obj)}}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
