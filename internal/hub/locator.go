package hub

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/quillml/quill/internal/ctxlog"
	"github.com/quillml/quill/internal/fsutil"
)

// Locator resolves artifact paths local-first and falls back to fetching
// through the hub transport into a local cache mirror.
type Locator struct {
	transport Transport
	cacheDir  string
}

// NewLocator wires a locator to a transport and a cache directory.
func NewLocator(transport Transport, cacheDir string) *Locator {
	return &Locator{transport: transport, cacheDir: cacheDir}
}

// CacheDir returns the root of the local cache mirror.
func (l *Locator) CacheDir() string { return l.cacheDir }

// CachePath returns the mirror path of a repository file.
func (l *Locator) CachePath(repo, filename, subfolder string) string {
	return filepath.Join(l.cacheDir, filepath.FromSlash(repo), subfolder, filename)
}

// Resolve reads the named file from a local directory, or fetches it from
// the hub when path is a repository identifier. A local directory that
// exists without the file fails with ConfigFileMissingError and is never
// retried remotely. Remote failures of any kind are wrapped into
// ArtifactNotFoundError with the cause preserved.
func (l *Locator) Resolve(ctx context.Context, path, filename, subfolder string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	loc := l.Locate(path, filename, subfolder)
	if loc.IsLocal {
		data, err := os.ReadFile(loc.ResolvedPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &ConfigFileMissingError{Dir: path, Filename: filepath.Join(subfolder, filename)}
			}
			return nil, fmt.Errorf("reading local file %q: %w", loc.ResolvedPath, err)
		}
		return data, nil
	}

	if _, _, err := ParseRepoID(path); err != nil {
		return nil, &ArtifactNotFoundError{Repo: path, Path: loc.ResolvedPath, Err: err}
	}
	logger.Debug("Fetching artifact from hub.", "repo", path, "file", loc.ResolvedPath)
	data, err := l.transport.Download(ctx, path, loc.ResolvedPath)
	if err != nil {
		return nil, &ArtifactNotFoundError{Repo: path, Path: loc.ResolvedPath, Err: err}
	}
	if err := l.writeCache(l.CachePath(path, filename, subfolder), data); err != nil {
		return nil, err
	}
	return data, nil
}

// CachedFiles lists the YAML documents currently held in the local cache
// mirror, relative to the cache root.
func (l *Locator) CachedFiles() ([]string, error) {
	paths, err := fsutil.FindFilesByExtension(l.cacheDir, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scanning cache %q: %w", l.cacheDir, err)
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(l.cacheDir, p)
		if err != nil {
			return nil, err
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out, nil
}

// Store publishes a file to a hub repository: the repository is created if
// absent, the bytes are mirrored into the local cache, then uploaded under
// the commit message.
func (l *Locator) Store(ctx context.Context, data []byte, repo, filename, subfolder string, kind RepoKind, commitMessage string) error {
	logger := ctxlog.FromContext(ctx)

	if _, _, err := ParseRepoID(repo); err != nil {
		return err
	}
	if err := l.transport.EnsureRepo(ctx, repo, kind); err != nil {
		return fmt.Errorf("ensuring repository %q exists: %w", repo, err)
	}
	if err := l.writeCache(l.CachePath(repo, filename, subfolder), data); err != nil {
		return err
	}

	remote := filename
	if subfolder != "" {
		remote = subfolder + "/" + filename
	}
	if commitMessage == "" {
		commitMessage = fmt.Sprintf("Upload %s", remote)
	}
	if err := l.transport.Upload(ctx, repo, remote, data, commitMessage); err != nil {
		return fmt.Errorf("uploading %q to %q: %w", remote, repo, err)
	}
	logger.Info("Uploaded artifact to hub.", "repo", repo, "file", remote, "message", commitMessage)
	return nil
}

// writeCache writes data under the cache mirror atomically: a uniquely named
// temp file in the target directory is renamed over the destination, so a
// cancelled fetch never leaves a truncated cache entry behind.
func (l *Locator) writeCache(target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory %q: %w", dir, err)
	}
	tmp := target + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing cache file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("committing cache file %q: %w", target, err)
	}
	return nil
}
