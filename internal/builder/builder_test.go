package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillml/quill/internal/builder"
	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/registry"
	"github.com/quillml/quill/internal/testutil"
	"github.com/quillml/quill/modules/adamw"
	"github.com/quillml/quill/modules/distilbert"
)

func TestBuildFromDefaults(t *testing.T) {
	h := testutil.NewHarness(t, testutil.NoopModule{})

	component, err := h.Builder.Build(context.Background(), config.TypeModel, "noop")
	require.NoError(t, err)

	noop, ok := component.(*testutil.NoopComponent)
	require.True(t, ok, "expected *testutil.NoopComponent, got %T", component)
	assert.Equal(t, "noop", noop.Config().ConfigName())
}

func TestBuildAppliesOverrides(t *testing.T) {
	h := testutil.NewHarness(t, testutil.NoopModule{})

	component, err := h.Builder.Build(context.Background(), config.TypeModel, "noop",
		builder.WithOverrides(map[string]any{"size": 4}))
	require.NoError(t, err)
	assert.Equal(t, 4, component.(*testutil.NoopComponent).Cfg.Size)
}

func TestBuildStrictOverrideFails(t *testing.T) {
	h := testutil.NewHarness(t, testutil.NoopModule{})

	_, err := h.Builder.Build(context.Background(), config.TypeModel, "noop",
		builder.WithOverrides(map[string]any{"bogus_field": 1}),
		builder.WithStrict())
	var fieldErr *config.UnknownConfigFieldError
	require.ErrorAs(t, err, &fieldErr)
}

func TestBuildUnknownKeyFailsFast(t *testing.T) {
	h := testutil.NewHarness(t, testutil.NoopModule{})

	_, err := h.Builder.Build(context.Background(), config.TypeModel, "missing")
	var unknownErr *registry.UnknownModuleError
	require.ErrorAs(t, err, &unknownErr)
}

func TestBuildConstructorFailureAborts(t *testing.T) {
	h := testutil.NewHarness(t, distilbert.Module{})

	// distilbert requires num_labels or id2label; the default config has
	// neither, so construction fails and no component leaks out.
	component, err := h.Builder.Build(context.Background(), config.TypeModel, distilbert.Key)
	require.Error(t, err)
	assert.Nil(t, component)
	assert.Contains(t, err.Error(), distilbert.Key)
}

func TestLoadFromRepo(t *testing.T) {
	h := testutil.NewHarness(t, distilbert.Module{})
	doc := "name: distilbert_text_classification\nconfig_type: model\nnum_labels: 2\n"
	h.Transport.Seed("acme/sentiment", "config.yaml", []byte(doc))

	component, err := h.Builder.Load(context.Background(), config.TypeModel, "acme/sentiment")
	require.NoError(t, err)

	model, ok := component.(*distilbert.Model)
	require.True(t, ok, "expected *distilbert.Model, got %T", component)
	assert.Equal(t, 2, model.NumLabels())
}

func TestLoadKindMismatchFails(t *testing.T) {
	h := testutil.NewHarness(t, distilbert.Module{}, adamw.Module{})
	doc := "name: adamw\nconfig_type: optimizer\nlr: 0.001\n"
	h.Transport.Seed("acme/opt", "config.yaml", []byte(doc))

	_, err := h.Builder.Load(context.Background(), config.TypeModel, "acme/opt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "optimizer")
	assert.Contains(t, err.Error(), "model")
}

func TestSaveComponentConfig(t *testing.T) {
	h := testutil.NewHarness(t, testutil.NoopModule{})
	ctx := context.Background()

	component, err := h.Builder.Build(ctx, config.TypeModel, "noop",
		builder.WithOverrides(map[string]any{"size": 8}))
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := h.Builder.Save(ctx, component, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.DefaultFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "size: 8")
}

func TestPushPublishesConfig(t *testing.T) {
	h := testutil.NewHarness(t, testutil.NoopModule{})
	ctx := context.Background()

	component, err := h.Builder.Build(ctx, config.TypeModel, "noop")
	require.NoError(t, err)

	err = h.Builder.Push(ctx, component, "acme/noop",
		builder.WithCommitMessage("add noop config"))
	require.NoError(t, err)

	assert.True(t, h.Transport.HasRepo("acme/noop"))
	uploads := h.Transport.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "acme/noop", uploads[0].Repo)
	assert.Equal(t, "add noop config", uploads[0].Message)
}

func TestPushThenLoadRoundTrip(t *testing.T) {
	h := testutil.NewHarness(t, testutil.NoopModule{})
	ctx := context.Background()

	component, err := h.Builder.Build(ctx, config.TypeModel, "noop",
		builder.WithOverrides(map[string]any{"size": 16}))
	require.NoError(t, err)
	require.NoError(t, h.Builder.Push(ctx, component, "acme/noop"))

	reloaded, err := h.Builder.Load(ctx, config.TypeModel, "acme/noop")
	require.NoError(t, err)
	assert.Equal(t, 16, reloaded.(*testutil.NoopComponent).Cfg.Size)
}
