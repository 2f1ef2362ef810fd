// Package text_classification_dataset provides the dataset module for
// labeled text classification corpora. Loading and batching mechanics are
// delegated to the framework layer; the module resolves and validates the
// dataset's config.
package text_classification_dataset

import (
	"errors"
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

const Key = "text_classification_dataset"

type Config struct {
	config.DatasetConfig `yaml:",inline"`

	TextField  string `yaml:"text_field,omitempty"`
	LabelField string `yaml:"label_field,omitempty"`
}

func DefaultConfig() *Config {
	c := &Config{
		DatasetConfig: config.NewDatasetConfig(Key),
		TextField:     "text",
		LabelField:    "label",
	}
	c.Task = "text_classification"
	return c
}

// Dataset is a resolved dataset description.
type Dataset struct {
	cfg *Config
}

func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *text_classification_dataset.Config, got %T", cfg)
	}
	if c.Path == "" {
		return nil, errors.New("dataset config has no `path`")
	}
	return &Dataset{cfg: c}, nil
}

func (d *Dataset) Config() config.Config { return d.cfg }

// Task returns the task this dataset serves.
func (d *Dataset) Task() string { return d.cfg.Task }

type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypeDataset,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
