// Package linear_scheduler provides a linear-decay learning-rate scheduler
// module with optional warmup.
package linear_scheduler

import (
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

const Key = "linear_scheduler"

type Config struct {
	config.SchedulerConfig `yaml:",inline"`

	WarmupSteps int `yaml:"warmup_steps,omitempty"`
	TotalSteps  int `yaml:"total_steps,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{SchedulerConfig: config.NewSchedulerConfig(Key)}
}

// Scheduler is a resolved scheduler description.
type Scheduler struct {
	cfg *Config
}

func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *linear_scheduler.Config, got %T", cfg)
	}
	if c.WarmupSteps < 0 {
		return nil, fmt.Errorf("warmup_steps must not be negative, got %d", c.WarmupSteps)
	}
	return &Scheduler{cfg: c}, nil
}

func (s *Scheduler) Config() config.Config { return s.cfg }

type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypeScheduler,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
