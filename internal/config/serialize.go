package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quillml/quill/internal/ctxlog"
)

// Marshal renders a config as a YAML document. Null-valued fields are
// dropped, so "unset" fields read back as class defaults on the other side.
// Field order follows struct declaration order.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config %q: %w", c.ConfigName(), err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", c.ConfigName(), err)
	}
	if len(doc.Content) > 0 {
		dropNulls(doc.Content[0])
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding config %q: %w", c.ConfigName(), err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config %q: %w", c.ConfigName(), err)
	}
	return buf.Bytes(), nil
}

func dropNulls(n *yaml.Node) {
	if n.Kind != yaml.MappingNode {
		return
	}
	kept := n.Content[:0]
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if value.Tag == "!!null" {
			continue
		}
		if value.Kind == yaml.MappingNode {
			dropNulls(value)
		}
		kept = append(kept, key, value)
	}
	n.Content = kept
}

// ToMap returns the config's fields as a generic mapping with null values
// removed. This is the view serialized to disk and uploaded to the hub.
func ToMap(c Config) (map[string]any, error) {
	data, err := Marshal(c)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", c.ConfigName(), err)
	}
	return out, nil
}

// Save writes the config document under dir, creating intermediate
// directories, and returns the written path.
func Save(ctx context.Context, c Config, dir, filename, subfolder string) (string, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	data, err := Marshal(c)
	if err != nil {
		return "", err
	}
	target := filepath.Join(dir, subfolder)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory %q: %w", target, err)
	}
	path := filepath.Join(target, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing config %q: %w", path, err)
	}
	ctxlog.FromContext(ctx).Info("Saved config.", "name", c.ConfigName(), "path", path)
	return path, nil
}
