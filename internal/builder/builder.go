package builder

import (
	"context"
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/ctxlog"
	"github.com/quillml/quill/internal/hub"
	"github.com/quillml/quill/internal/registry"
	"github.com/quillml/quill/internal/resolver"
)

// Builder constructs module instances from registry keys or config sources.
type Builder struct {
	registry *registry.Registry
	locator  *hub.Locator
	resolver *resolver.Resolver
}

// New creates a Builder over a registry and an artifact locator.
func New(reg *registry.Registry, locator *hub.Locator) *Builder {
	return &Builder{
		registry: reg,
		locator:  locator,
		resolver: resolver.New(reg, locator),
	}
}

// Resolver exposes the builder's config resolver for callers that only need
// configs, not constructed modules.
func (b *Builder) Resolver() *resolver.Resolver { return b.resolver }

// Build constructs the module registered under (kind, key) from its default
// config, with overrides applied before construction.
func (b *Builder) Build(ctx context.Context, kind config.Type, key string, opts ...Option) (registry.Component, error) {
	o := buildOptions(opts)

	entry, err := b.registry.Lookup(kind, key)
	if err != nil {
		return nil, err
	}
	cfg := entry.NewConfig()
	if len(o.overrides) > 0 {
		if _, err := config.Merge(ctx, cfg, o.overrides, o.policy); err != nil {
			return nil, err
		}
	}
	return b.construct(ctx, entry, cfg)
}

// Load constructs a module of the given kind from a config document found at
// a local directory or hub repository. The document's own name selects the
// implementation; asking for a model path that holds a dataset config fails.
func (b *Builder) Load(ctx context.Context, kind config.Type, pathOrRepo string, opts ...Option) (registry.Component, error) {
	o := buildOptions(opts)

	cfg, err := b.resolver.Load(ctx, pathOrRepo, o.resolverOptions()...)
	if err != nil {
		return nil, err
	}
	if cfg.ConfigKind() != kind {
		return nil, fmt.Errorf("config at %q declares config_type %q, expected %q", pathOrRepo, cfg.ConfigKind(), kind)
	}
	entry, err := b.registry.Lookup(kind, cfg.ConfigName())
	if err != nil {
		return nil, err
	}
	return b.construct(ctx, entry, cfg)
}

// Save persists a component's config under a local directory.
func (b *Builder) Save(ctx context.Context, c registry.Component, dir string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	return config.Save(ctx, c.Config(), dir, o.filename, o.subfolder)
}

// Push publishes a component's config to a hub repository, creating the
// repository if needed.
func (b *Builder) Push(ctx context.Context, c registry.Component, repo string, opts ...Option) error {
	o := buildOptions(opts)

	data, err := config.Marshal(c.Config())
	if err != nil {
		return err
	}
	repoKind := hub.RepoModel
	if c.Config().ConfigKind() == config.TypeDataset {
		repoKind = hub.RepoDataset
	}
	return b.locator.Store(ctx, data, repo, o.filename, o.subfolder, repoKind, o.commitMessage)
}

func (b *Builder) construct(ctx context.Context, entry registry.Entry, cfg config.Config) (registry.Component, error) {
	component, err := entry.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("constructing %s %q: %w", entry.Kind, entry.Key, err)
	}
	ctxlog.FromContext(ctx).Debug("Constructed module.", "kind", entry.Kind.String(), "key", entry.Key)
	return component, nil
}
