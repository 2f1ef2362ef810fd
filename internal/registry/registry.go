package registry

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/quillml/quill/internal/config"
)

// Module is the interface that all module packages implement to be
// registered. Register is called once per Registry during bootstrap.
type Module interface {
	Register(r *Registry) error
}

// Component is a constructed module instance. Every component is built from
// exactly one config, which it keeps for later save/push operations.
type Component interface {
	Config() config.Config
}

// Entry binds a kind-qualified key to its config and module factories.
type Entry struct {
	Kind config.Type
	Key  string

	// NewConfig returns a fresh config populated with the module's defaults.
	NewConfig func() config.Config

	// New constructs the module from a config previously produced by
	// NewConfig (possibly merged with overrides).
	New func(cfg config.Config) (Component, error)
}

// Registry holds the registered entries for a single application instance,
// partitioned by module kind.
type Registry struct {
	mu      sync.RWMutex
	strict  bool
	entries map[config.Type]map[string]Entry
}

// Option configures a Registry.
type Option func(*Registry)

// WithStrict makes duplicate registration fatal instead of
// overwrite-with-warning.
func WithStrict() Option {
	return func(r *Registry) { r.strict = true }
}

// New creates and initializes a new Registry instance.
func New(opts ...Option) *Registry {
	r := &Registry{entries: make(map[config.Type]map[string]Entry)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an entry under its normalized key. Registering the same key
// twice fails with DuplicateKeyError in strict mode; otherwise the previous
// entry is overwritten and a warning is logged, which keeps re-registration
// of an identical entry idempotent.
func (r *Registry) Register(e Entry) error {
	key := NormalizeKey(e.Key)
	e.Key = key

	r.mu.Lock()
	defer r.mu.Unlock()

	partition, ok := r.entries[e.Kind]
	if !ok {
		partition = make(map[string]Entry)
		r.entries[e.Kind] = partition
	}
	if _, exists := partition[key]; exists {
		if r.strict {
			return &DuplicateKeyError{Kind: e.Kind, Key: key}
		}
		slog.Warn("Overwriting registry entry.", "kind", e.Kind.String(), "key", key)
	}
	slog.Debug("Registering module.", "kind", e.Kind.String(), "key", key)
	partition[key] = e
	return nil
}

// Lookup resolves the entry for a kind-qualified key.
func (r *Registry) Lookup(kind config.Type, key string) (Entry, error) {
	key = NormalizeKey(key)

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[kind][key]
	if !ok {
		return Entry{}, &UnknownModuleError{Kind: kind, Key: key}
	}
	return entry, nil
}

// NewConfig returns a default config for the registered key.
func (r *Registry) NewConfig(kind config.Type, key string) (config.Config, error) {
	entry, err := r.Lookup(kind, key)
	if err != nil {
		return nil, err
	}
	return entry.NewConfig(), nil
}

// Keys lists the registered keys for a kind in sorted order.
func (r *Registry) Keys(kind config.Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries[kind]))
	for key := range r.entries[kind] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
