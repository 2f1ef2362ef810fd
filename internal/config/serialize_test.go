package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalDropsNullFields(t *testing.T) {
	cfg := NewModelConfig("m")
	cfg.Extra = map[string]any{"weights": nil, "dim": 8}

	data, err := Marshal(&cfg)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "weights")
	assert.Contains(t, string(data), "dim: 8")
	assert.Contains(t, string(data), "name: m")
}

func TestMarshalKeepsDeclarationOrder(t *testing.T) {
	cfg := NewTrainConfig("trainer")
	cfg.BatchSize = 8

	data, err := Marshal(&cfg)
	require.NoError(t, err)

	text := string(data)
	assert.Less(t, strings.Index(text, "name:"), strings.Index(text, "config_type:"))
	assert.Less(t, strings.Index(text, "config_type:"), strings.Index(text, "batch_size:"))
}

func TestSaveWritesDocument(t *testing.T) {
	dir := t.TempDir()
	cfg := NewDatasetConfig("text_classification_dataset")
	cfg.Task = "text_classification"

	path, err := Save(context.Background(), &cfg, dir, "", "preprocessor")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "preprocessor", DefaultFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "text_classification_dataset", raw["name"])
	assert.Equal(t, "dataset", raw["config_type"])
	assert.Equal(t, "text_classification", raw["task"])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := NewTrainConfig("trainer")
	cfg.BatchSize = 16
	cfg.Epochs = 3
	cfg.Metrics = []string{"accuracy"}
	opt := NewOptimizerConfig("adamw")
	opt.LR = 0.001
	cfg.Optimizer = &opt

	_, err := Save(context.Background(), &cfg, dir, "", "")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, DefaultFilename))
	require.NoError(t, err)

	var reloaded TrainConfig
	require.NoError(t, yaml.Unmarshal(data, &reloaded))
	assert.Equal(t, cfg, reloaded)
}

func TestToMapExcludesNulls(t *testing.T) {
	cfg := NewModelConfig("m")
	cfg.Extra = map[string]any{"weights": nil}

	m, err := ToMap(&cfg)
	require.NoError(t, err)
	_, ok := m["weights"]
	assert.False(t, ok)
	assert.Equal(t, "m", m["name"])
}
