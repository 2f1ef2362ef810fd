// Package cross_entropy provides the cross-entropy criterion module.
package cross_entropy

import (
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

const Key = "cross_entropy"

type Config struct {
	config.CriterionConfig `yaml:",inline"`

	LabelSmoothing float64 `yaml:"label_smoothing,omitempty"`
}

func DefaultConfig() *Config {
	c := &Config{CriterionConfig: config.NewCriterionConfig(Key)}
	c.Reduction = "mean"
	c.IgnoreIndex = -100
	return c
}

// Criterion is a resolved loss criterion description.
type Criterion struct {
	cfg *Config
}

func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *cross_entropy.Config, got %T", cfg)
	}
	switch c.Reduction {
	case "mean", "sum", "none":
	default:
		return nil, fmt.Errorf("invalid reduction %q: must be \"mean\", \"sum\" or \"none\"", c.Reduction)
	}
	return &Criterion{cfg: c}, nil
}

func (c *Criterion) Config() config.Config { return c.cfg }

type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypeCriterion,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
