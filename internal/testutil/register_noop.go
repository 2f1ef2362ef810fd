package testutil

import (
	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

// NoopConfig is the config for the noop fixture model.
type NoopConfig struct {
	config.ModelConfig `yaml:",inline"`

	Size int `yaml:"size,omitempty"`
}

// NoopComponent is a model that does nothing; it exists so registry and
// builder behavior can be tested without a real module.
type NoopComponent struct {
	Cfg *NoopConfig
}

func (n *NoopComponent) Config() config.Config { return n.Cfg }

// NoopModule registers the noop model under the key "noop".
type NoopModule struct{}

func (NoopModule) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind: config.TypeModel,
		Key:  "noop",
		NewConfig: func() config.Config {
			return &NoopConfig{ModelConfig: config.NewModelConfig("noop")}
		},
		New: func(cfg config.Config) (registry.Component, error) {
			return &NoopComponent{Cfg: cfg.(*NoopConfig)}, nil
		},
	})
}
