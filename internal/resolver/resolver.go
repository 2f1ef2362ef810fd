package resolver

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/ctxlog"
	"github.com/quillml/quill/internal/hub"
	"github.com/quillml/quill/internal/registry"
)

// Resolver resolves config documents against a registry, reading their bytes
// through an artifact locator.
type Resolver struct {
	registry *registry.Registry
	locator  *hub.Locator
}

// New creates a Resolver.
func New(reg *registry.Registry, locator *hub.Locator) *Resolver {
	return &Resolver{registry: reg, locator: locator}
}

// header is the portion of a document read ahead of construction to pick the
// concrete config type.
type header struct {
	Name string `yaml:"name"`
	Type string `yaml:"config_type"`
}

// Load resolves pathOrRepo to a config document and materializes it as the
// concrete config type registered for its name and config_type. Document
// fields unknown to that type are warned about, not fatal, unless the strict
// option is set; caller overrides are applied last.
func (r *Resolver) Load(ctx context.Context, pathOrRepo string, opts ...Option) (config.Config, error) {
	o := buildOptions(opts)
	data, err := r.locator.Resolve(ctx, pathOrRepo, o.filename, o.subfolder)
	if err != nil {
		return nil, err
	}
	return r.LoadBytes(ctx, data, opts...)
}

// LoadBytes materializes a config from an already-fetched document.
func (r *Resolver) LoadBytes(ctx context.Context, data []byte, opts ...Option) (config.Config, error) {
	o := buildOptions(opts)
	logger := ctxlog.FromContext(ctx)

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config document: %w", err)
	}

	var hdr header
	if err := yaml.Unmarshal(data, &hdr); err != nil {
		return nil, fmt.Errorf("parsing config document: %w", err)
	}
	if hdr.Name == "" {
		return nil, fmt.Errorf("config document has no `name` field")
	}
	kind, err := config.ParseType(hdr.Type)
	if err != nil {
		return nil, fmt.Errorf("config document %q: %w", hdr.Name, err)
	}

	entry, err := r.registry.Lookup(kind, hdr.Name)
	if err != nil {
		return nil, err
	}
	cfg := entry.NewConfig()

	// Documents from the hub evolve independently of pinned clients, so the
	// document itself always merges non-strictly; strictness only governs
	// explicit caller overrides.
	diags, err := config.Merge(ctx, cfg, raw, config.WarnAndSet)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		logger.Debug("Config document field not declared by target type.", "field", d.Field)
	}

	if len(o.overrides) > 0 {
		if _, err := config.Merge(ctx, cfg, o.overrides, o.policy); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
