package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillml/quill/internal/builder"
	"github.com/quillml/quill/internal/hub"
	"github.com/quillml/quill/internal/registry"
	"github.com/quillml/quill/internal/resolver"
)

// Harness wires a registry, an in-memory hub and the layers on top of them
// for a single test.
type Harness struct {
	Registry  *registry.Registry
	Transport *MemTransport
	Locator   *hub.Locator
	Resolver  *resolver.Resolver
	Builder   *builder.Builder
	CacheDir  string
}

// NewHarness builds a harness with the given modules registered. The cache
// directory is a per-test temp dir.
func NewHarness(t *testing.T, modules ...registry.Module) *Harness {
	t.Helper()

	reg := registry.New()
	for _, mod := range modules {
		require.NoError(t, mod.Register(reg))
	}

	transport := NewMemTransport()
	cacheDir := t.TempDir()
	locator := hub.NewLocator(transport, cacheDir)

	return &Harness{
		Registry:  reg,
		Transport: transport,
		Locator:   locator,
		Resolver:  resolver.New(reg, locator),
		Builder:   builder.New(reg, locator),
		CacheDir:  cacheDir,
	}
}
