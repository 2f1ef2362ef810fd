package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Flatten collapses a config's nested mappings into a single-level map.
// Traversal follows field declaration order, depth-first, so a key that
// appears at more than one nesting level resolves last-write-wins: the value
// encountered latest in declaration order survives. Null-valued fields are
// dropped.
func Flatten(c Config) (map[string]any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config %q: %w", c.ConfigName(), err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", c.ConfigName(), err)
	}
	out := make(map[string]any)
	if len(doc.Content) == 0 {
		return out, nil
	}
	if err := flattenNode(doc.Content[0], out); err != nil {
		return nil, fmt.Errorf("flattening config %q: %w", c.ConfigName(), err)
	}
	return out, nil
}

func flattenNode(n *yaml.Node, out map[string]any) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping node, got kind %d", n.Kind)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		value := n.Content[i+1]
		switch {
		case value.Kind == yaml.MappingNode:
			if err := flattenNode(value, out); err != nil {
				return err
			}
		case value.Tag == "!!null":
			continue
		default:
			var v any
			if err := value.Decode(&v); err != nil {
				return fmt.Errorf("decoding value for key %q: %w", key, err)
			}
			out[key] = v
		}
	}
	return nil
}
