// Package word2vec provides the word2vec embedding module.
package word2vec

import (
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

const Key = "word2vec"

type Config struct {
	config.EmbeddingConfig `yaml:",inline"`

	Window   int `yaml:"window,omitempty"`
	MinCount int `yaml:"min_count,omitempty"`
}

func DefaultConfig() *Config {
	c := &Config{
		EmbeddingConfig: config.NewEmbeddingConfig(Key),
		Window:          5,
		MinCount:        1,
	}
	c.Dim = 100
	return c
}

// Embedding is a resolved embedding description.
type Embedding struct {
	cfg *Config
}

func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *word2vec.Config, got %T", cfg)
	}
	if c.Dim <= 0 {
		return nil, fmt.Errorf("embedding dim must be positive, got %d", c.Dim)
	}
	return &Embedding{cfg: c}, nil
}

func (e *Embedding) Config() config.Config { return e.cfg }

// Dim returns the embedding dimensionality.
func (e *Embedding) Dim() int { return e.cfg.Dim }

type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypeEmbedding,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
