// Package testutil provides shared helpers for tests: an in-memory hub
// transport, a wiring harness, and fixture modules.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/quillml/quill/internal/hub"
)

// Upload records a single published file for assertions.
type Upload struct {
	Repo    string
	Path    string
	Message string
}

// MemTransport is an in-memory hub.Transport. Repositories are maps from
// file path to content.
type MemTransport struct {
	mu      sync.Mutex
	repos   map[string]map[string][]byte
	uploads []Upload

	// DownloadErr, when set, fails every download with this error.
	DownloadErr error
}

// NewMemTransport creates an empty in-memory transport.
func NewMemTransport() *MemTransport {
	return &MemTransport{repos: make(map[string]map[string][]byte)}
}

// Seed stores a file in a repository, creating the repository if needed.
func (t *MemTransport) Seed(repo, path string, data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.repos[repo] == nil {
		t.repos[repo] = make(map[string][]byte)
	}
	t.repos[repo][path] = data
}

// Uploads returns the uploads recorded so far.
func (t *MemTransport) Uploads() []Upload {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Upload(nil), t.uploads...)
}

// HasRepo reports whether the repository exists.
func (t *MemTransport) HasRepo(repo string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.repos[repo]
	return ok
}

func (t *MemTransport) Download(ctx context.Context, repo, path string) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.DownloadErr != nil {
		return nil, t.DownloadErr
	}
	files, ok := t.repos[repo]
	if !ok {
		return nil, fmt.Errorf("repository %q does not exist", repo)
	}
	data, ok := files[path]
	if !ok {
		return nil, fmt.Errorf("file %q not found in %q", path, repo)
	}
	return data, nil
}

func (t *MemTransport) Upload(ctx context.Context, repo, path string, data []byte, commitMessage string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	files, ok := t.repos[repo]
	if !ok {
		return fmt.Errorf("repository %q does not exist", repo)
	}
	files[path] = data
	t.uploads = append(t.uploads, Upload{Repo: repo, Path: path, Message: commitMessage})
	return nil
}

func (t *MemTransport) EnsureRepo(ctx context.Context, repo string, kind hub.RepoKind) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.repos[repo] == nil {
		t.repos[repo] = make(map[string][]byte)
	}
	return nil
}
