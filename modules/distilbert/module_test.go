package distilbert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresLabels(t *testing.T) {
	_, err := New(DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_labels")
}

func TestNewDerivesNumLabelsFromID2Label(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ID2Label = map[int]string{0: "negative", 1: "positive"}

	component, err := New(cfg)
	require.NoError(t, err)

	model := component.(*Model)
	assert.Equal(t, 2, model.NumLabels())
	assert.Equal(t, "positive", model.Label(1))
	assert.Equal(t, "7", model.Label(7))
}

func TestNewRejectsWrongConfigType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumLabels = 2
	component, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, component.Config())

	_, err = New(nil)
	require.Error(t, err)
}
