package config

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quillml/quill/internal/ctxlog"
)

// MergePolicy controls how Merge treats override keys that the target config
// does not declare.
type MergePolicy int

const (
	// WarnAndSet accepts unknown keys, stores them in the config's inline
	// extra map, and reports each one as a Diagnostic. This is the default
	// for documents loaded from the hub, which evolve independently of
	// pinned client versions.
	WarnAndSet MergePolicy = iota

	// Strict rejects the first unknown key with UnknownConfigFieldError.
	Strict
)

// Diagnostic describes a non-fatal finding produced while merging overrides.
type Diagnostic struct {
	Field   string
	Message string
}

// Merge applies overrides onto c in place and returns the diagnostics
// produced along the way. Mapping values targeting a nested config are merged
// field-by-field; a value that is itself a Config replaces the nested config
// wholesale. The config's type is immutable: a `config_type` override is
// dropped.
func Merge(ctx context.Context, c Config, overrides map[string]any, policy MergePolicy) ([]Diagnostic, error) {
	if len(overrides) == 0 {
		return nil, nil
	}
	logger := ctxlog.FromContext(ctx)

	known := knownFields(c)
	kind := c.ConfigKind()

	var diags []Diagnostic
	clean := make(map[string]any, len(overrides))
	for key, value := range overrides {
		if key == "config_type" {
			continue
		}
		if _, ok := known[key]; !ok {
			if policy == Strict {
				return nil, &UnknownConfigFieldError{Config: c.ConfigName(), Field: key}
			}
			d := Diagnostic{
				Field:   key,
				Message: fmt.Sprintf("%s config %q does not declare field %q, setting it anyway", kind, c.ConfigName(), key),
			}
			diags = append(diags, d)
			logger.Warn("Unknown config field set by override.", "config", c.ConfigName(), "kind", kind.String(), "field", key)
		}
		// A Config-typed value means the caller wants wholesale replacement
		// of the nested config, bypassing the field-by-field merge below.
		if nested, ok := value.(Config); ok && setConfigField(c, key, nested) {
			continue
		}
		clean[key] = value
	}

	data, err := yaml.Marshal(clean)
	if err != nil {
		return diags, fmt.Errorf("encoding overrides for config %q: %w", c.ConfigName(), err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return diags, fmt.Errorf("applying overrides to config %q: %w", c.ConfigName(), err)
	}

	if s, ok := c.(kindSetter); ok {
		s.setKind(kind)
	}
	return diags, nil
}

type kindSetter interface{ setKind(Type) }

func (b *Base) setKind(t Type) { b.Type = t }

// knownFields collects the YAML key names a config declares, including inline
// extras already set on it.
func knownFields(c Config) map[string]struct{} {
	keys := make(map[string]struct{})
	collectFieldKeys(reflect.ValueOf(c), keys)
	return keys
}

func collectFieldKeys(v reflect.Value, keys map[string]struct{}) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("yaml")
		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "-" {
			continue
		}
		inline := false
		for _, opt := range parts[1:] {
			if opt == "inline" {
				inline = true
			}
		}
		if inline {
			fv := v.Field(i)
			switch fv.Kind() {
			case reflect.Struct, reflect.Pointer:
				collectFieldKeys(fv, keys)
			case reflect.Map:
				for _, mk := range fv.MapKeys() {
					if mk.Kind() == reflect.String {
						keys[mk.String()] = struct{}{}
					}
				}
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		keys[name] = struct{}{}
	}
}

// setConfigField assigns value directly to the struct field whose YAML key
// matches name. Returns false when no assignable field exists, in which case
// the caller falls back to the document merge path.
func setConfigField(c Config, name string, value Config) bool {
	v := reflect.ValueOf(c)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return setStructField(v, name, reflect.ValueOf(value))
}

func setStructField(v reflect.Value, name string, value reflect.Value) bool {
	if v.Kind() != reflect.Struct {
		return false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("yaml")
		parts := strings.Split(tag, ",")
		if strings.Contains(tag, "inline") && field.Anonymous {
			if setStructField(v.Field(i), name, value) {
				return true
			}
			continue
		}
		fieldName := parts[0]
		if fieldName == "" {
			fieldName = strings.ToLower(field.Name)
		}
		if fieldName != name {
			continue
		}
		fv := v.Field(i)
		if !fv.CanSet() {
			return false
		}
		if value.Type().AssignableTo(fv.Type()) {
			fv.Set(value)
			return true
		}
		// A pointer field receiving a value (or vice versa) of the same
		// underlying config type.
		if fv.Kind() == reflect.Pointer && value.Kind() == reflect.Pointer &&
			value.Type().Elem().AssignableTo(fv.Type().Elem()) {
			fv.Set(value)
			return true
		}
		return false
	}
	return false
}
