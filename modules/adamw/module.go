// Package adamw provides the AdamW optimizer module. The gradient step
// itself belongs to the framework layer; this module resolves and validates
// the optimizer's hyperparameters.
package adamw

import (
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

const Key = "adamw"

type Config struct {
	config.OptimizerConfig `yaml:",inline"`

	Beta1 float64 `yaml:"beta1,omitempty"`
	Beta2 float64 `yaml:"beta2,omitempty"`
	Eps   float64 `yaml:"eps,omitempty"`
}

func DefaultConfig() *Config {
	c := &Config{
		OptimizerConfig: config.NewOptimizerConfig(Key),
		Beta1:           0.9,
		Beta2:           0.999,
		Eps:             1e-8,
	}
	c.LR = 2e-5
	c.WeightDecay = 0.01
	return c
}

// Optimizer is a resolved optimizer description.
type Optimizer struct {
	cfg *Config
}

func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *adamw.Config, got %T", cfg)
	}
	if c.LR <= 0 {
		return nil, fmt.Errorf("learning rate must be positive, got %g", c.LR)
	}
	return &Optimizer{cfg: c}, nil
}

func (o *Optimizer) Config() config.Config { return o.cfg }

// LR returns the configured learning rate.
func (o *Optimizer) LR() float64 { return o.cfg.LR }

type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypeOptimizer,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
