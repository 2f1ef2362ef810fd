package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "acme", "sentiment"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acme", "sentiment", "config.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	files, err := FindFilesByExtension(dir, ".yaml")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "acme", "sentiment", "config.yaml"), files[0])
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	files, err := FindFilesByExtension(filepath.Join(t.TempDir(), "does-not-exist"), ".yaml")
	require.NoError(t, err)
	assert.Empty(t, files)
}
