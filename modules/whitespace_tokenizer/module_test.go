package whitespace_tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	component, err := New(DefaultConfig())
	require.NoError(t, err)

	tok := component.(*Tokenizer)
	assert.Equal(t, []string{"hello", "world"}, tok.Tokenize("Hello   World"))
}

func TestTokenizeMaxTokens(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lowercase = false
	cfg.MaxTokens = 2

	component, err := New(cfg)
	require.NoError(t, err)

	tok := component.(*Tokenizer)
	assert.Equal(t, []string{"A", "B"}, tok.Tokenize("A B C D"))
}
