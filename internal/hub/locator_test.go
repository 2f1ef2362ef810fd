package hub_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillml/quill/internal/hub"
	"github.com/quillml/quill/internal/testutil"
)

func newLocator(t *testing.T) (*hub.Locator, *testutil.MemTransport) {
	t.Helper()
	transport := testutil.NewMemTransport()
	return hub.NewLocator(transport, t.TempDir()), transport
}

func TestParseRepoID(t *testing.T) {
	owner, name, err := hub.ParseRepoID("acme/sentiment")
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "sentiment", name)

	for _, bad := range []string{"", "acme", "/sentiment", "acme/", "a/b/c"} {
		_, _, err := hub.ParseRepoID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestResolveLocalFile(t *testing.T) {
	locator, _ := newLocator(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("name: noop\n"), 0o644))

	data, err := locator.Resolve(context.Background(), dir, "config.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, "name: noop\n", string(data))
}

func TestResolveLocalDirMissingFileIsFatal(t *testing.T) {
	locator, transport := newLocator(t)

	// The same name exists as a remote repository holding the file; the
	// local directory still wins and still fails.
	// t.Chdir requires Go 1.24; replicate it for older toolchains.
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.MkdirAll("acme/sentiment", 0o755))
	transport.Seed("acme/sentiment", "config.yaml", []byte("name: noop\n"))

	_, err := locator.Resolve(context.Background(), "acme/sentiment", "config.yaml", "")
	var missingErr *hub.ConfigFileMissingError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "acme/sentiment", missingErr.Dir)
	assert.Contains(t, err.Error(), "config.yaml")
}

func TestResolveRemoteFetchPopulatesCache(t *testing.T) {
	locator, transport := newLocator(t)
	transport.Seed("acme/sentiment", "config.yaml", []byte("name: noop\n"))

	data, err := locator.Resolve(context.Background(), "acme/sentiment", "config.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, "name: noop\n", string(data))

	cached, err := os.ReadFile(locator.CachePath("acme/sentiment", "config.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, data, cached)
}

func TestResolveRemoteSubfolder(t *testing.T) {
	locator, transport := newLocator(t)
	transport.Seed("acme/sentiment", "preprocessor/config.yaml", []byte("name: tok\n"))

	data, err := locator.Resolve(context.Background(), "acme/sentiment", "config.yaml", "preprocessor")
	require.NoError(t, err)
	assert.Equal(t, "name: tok\n", string(data))
}

func TestResolveRemoteFailureWrapsCause(t *testing.T) {
	locator, transport := newLocator(t)
	cause := errors.New("connection refused")
	transport.DownloadErr = cause

	_, err := locator.Resolve(context.Background(), "acme/sentiment", "config.yaml", "")
	var notFoundErr *hub.ArtifactNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "acme/sentiment")
}

func TestResolveInvalidRepoID(t *testing.T) {
	locator, _ := newLocator(t)

	_, err := locator.Resolve(context.Background(), "not-a-repo-or-dir", "config.yaml", "")
	var notFoundErr *hub.ArtifactNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestStoreCreatesRepoAndUploads(t *testing.T) {
	locator, transport := newLocator(t)

	err := locator.Store(context.Background(), []byte("name: noop\n"), "acme/sentiment", "config.yaml", "", hub.RepoModel, "initial commit")
	require.NoError(t, err)

	assert.True(t, transport.HasRepo("acme/sentiment"))
	uploads := transport.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "config.yaml", uploads[0].Path)
	assert.Equal(t, "initial commit", uploads[0].Message)

	// The local mirror holds the published bytes.
	mirror, err := os.ReadFile(locator.CachePath("acme/sentiment", "config.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, "name: noop\n", string(mirror))
}

func TestStoreDefaultCommitMessage(t *testing.T) {
	locator, transport := newLocator(t)

	err := locator.Store(context.Background(), []byte("x"), "acme/sentiment", "config.yaml", "model", hub.RepoModel, "")
	require.NoError(t, err)

	uploads := transport.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "model/config.yaml", uploads[0].Path)
	assert.Contains(t, uploads[0].Message, "model/config.yaml")
}

func TestStoreRejectsInvalidRepoID(t *testing.T) {
	locator, _ := newLocator(t)
	err := locator.Store(context.Background(), []byte("x"), "nope", "config.yaml", "", hub.RepoModel, "")
	require.Error(t, err)
}

func TestCachedFiles(t *testing.T) {
	locator, transport := newLocator(t)

	files, err := locator.CachedFiles()
	require.NoError(t, err)
	assert.Empty(t, files)

	transport.Seed("acme/sentiment", "config.yaml", []byte("name: noop\n"))
	_, err = locator.Resolve(context.Background(), "acme/sentiment", "config.yaml", "")
	require.NoError(t, err)

	files, err = locator.CachedFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"acme/sentiment/config.yaml"}, files)
}
