// Package distilbert provides the distilbert_text_classification model: a
// DistilBERT encoder with a classification head, constructed by the
// underlying deep-learning framework from this config.
package distilbert

import (
	"errors"
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

// Key is the model's registry key.
const Key = "distilbert_text_classification"

// Config holds the construction parameters for the model, including the
// arguments forwarded to the inner encoder.
type Config struct {
	config.ModelConfig `yaml:",inline"`

	Dim       int            `yaml:"dim,omitempty"`
	NumLabels int            `yaml:"num_labels,omitempty"`
	ID2Label  map[int]string `yaml:"id2label,omitempty"`
	Dropout   float64        `yaml:"seq_classif_dropout,omitempty"`
	MaxSeqLen int            `yaml:"max_position_embeddings,omitempty"`
}

// DefaultConfig returns the model's defaults.
func DefaultConfig() *Config {
	return &Config{
		ModelConfig: config.NewModelConfig(Key),
		Dim:         768,
		Dropout:     0.2,
		MaxSeqLen:   512,
	}
}

// Model is a text classification model instance.
type Model struct {
	cfg *Config
}

// New constructs the model. At least one of num_labels and id2label must be
// set; num_labels is derived from id2label when only the latter is given.
func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *distilbert.Config, got %T", cfg)
	}
	if c.NumLabels == 0 && len(c.ID2Label) == 0 {
		return nil, errors.New("both `num_labels` and `id2label` are unset, provide at least one")
	}
	if c.NumLabels == 0 {
		c.NumLabels = len(c.ID2Label)
	}
	return &Model{cfg: c}, nil
}

// Config returns the model's config.
func (m *Model) Config() config.Config { return m.cfg }

// NumLabels returns the size of the classification head.
func (m *Model) NumLabels() int { return m.cfg.NumLabels }

// Label maps a predicted class index to its label string, falling back to
// the index's decimal form when no mapping is configured.
func (m *Model) Label(index int) string {
	if label, ok := m.cfg.ID2Label[index]; ok {
		return label
	}
	return fmt.Sprintf("%d", index)
}

// Module registers the model with an application registry.
type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypeModel,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
