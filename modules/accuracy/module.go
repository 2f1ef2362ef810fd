// Package accuracy provides the accuracy metric module.
package accuracy

import (
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

const Key = "accuracy"

type Config struct {
	config.MetricConfig `yaml:",inline"`
}

func DefaultConfig() *Config {
	return &Config{MetricConfig: config.NewMetricConfig(Key)}
}

// Metric computes classification accuracy.
type Metric struct {
	cfg *Config
}

func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *accuracy.Config, got %T", cfg)
	}
	return &Metric{cfg: c}, nil
}

func (m *Metric) Config() config.Config { return m.cfg }

// Compute returns the fraction of predictions equal to their labels.
func (m *Metric) Compute(predictions, labels []int) (float64, error) {
	if len(predictions) != len(labels) {
		return 0, fmt.Errorf("got %d predictions for %d labels", len(predictions), len(labels))
	}
	if len(labels) == 0 {
		return 0, nil
	}
	correct := 0
	for i := range labels {
		if predictions[i] == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels)), nil
}

type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypeMetric,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
