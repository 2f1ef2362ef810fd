// Package whitespace_tokenizer provides a minimal whitespace-splitting
// preprocessor. Real tokenization pipelines live in the framework layer;
// this module exists so preprocessor configs have a concrete resolution
// target.
package whitespace_tokenizer

import (
	"fmt"
	"strings"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
)

const Key = "whitespace_tokenizer"

type Config struct {
	config.PreprocessorConfig `yaml:",inline"`

	Lowercase bool `yaml:"lowercase,omitempty"`
	MaxTokens int  `yaml:"max_tokens,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		PreprocessorConfig: config.NewPreprocessorConfig(Key),
		Lowercase:          true,
	}
}

// Tokenizer splits text on whitespace.
type Tokenizer struct {
	cfg *Config
}

func New(cfg config.Config) (registry.Component, error) {
	c, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *whitespace_tokenizer.Config, got %T", cfg)
	}
	return &Tokenizer{cfg: c}, nil
}

func (t *Tokenizer) Config() config.Config { return t.cfg }

// Tokenize splits text into tokens, lowercasing and truncating per config.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.cfg.Lowercase {
		text = strings.ToLower(text)
	}
	tokens := strings.Fields(text)
	if t.cfg.MaxTokens > 0 && len(tokens) > t.cfg.MaxTokens {
		tokens = tokens[:t.cfg.MaxTokens]
	}
	return tokens
}

type Module struct{}

func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Kind:      config.TypePreprocessor,
		Key:       Key,
		NewConfig: func() config.Config { return DefaultConfig() },
		New:       New,
	})
}
