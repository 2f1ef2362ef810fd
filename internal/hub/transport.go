package hub

import (
	"context"
	"fmt"
	"net/http"

	"resty.dev/v3"
)

// Transport is the abstract hub collaborator. The locator only ever asks it
// to fetch bytes for a path, store bytes at a path, and make sure a
// repository exists.
type Transport interface {
	Download(ctx context.Context, repo, path string) ([]byte, error)
	Upload(ctx context.Context, repo, path string, data []byte, commitMessage string) error
	EnsureRepo(ctx context.Context, repo string, kind RepoKind) error
}

// HTTPTransport talks to a hub over its HTTP API.
type HTTPTransport struct {
	client *resty.Client
}

// NewHTTPTransport returns a transport bound to the hub at baseURL.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{client: resty.New().SetBaseURL(baseURL)}
}

// Close releases the underlying HTTP client resources.
func (t *HTTPTransport) Close() error { return t.client.Close() }

// Download fetches a file from a repository's main revision.
func (t *HTTPTransport) Download(ctx context.Context, repo, path string) ([]byte, error) {
	res, err := t.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/resolve/main/%s", repo, path))
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("hub returned %s for %s/%s", res.Status(), repo, path)
	}
	return res.Bytes(), nil
}

// Upload publishes a file into a repository under a commit message.
func (t *HTTPTransport) Upload(ctx context.Context, repo, path string, data []byte, commitMessage string) error {
	res, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("X-Commit-Message", commitMessage).
		SetBody(data).
		Put(fmt.Sprintf("/api/%s/upload/main/%s", repo, path))
	if err != nil {
		return err
	}
	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusCreated {
		return fmt.Errorf("hub returned %s uploading %s to %s", res.Status(), path, repo)
	}
	return nil
}

// EnsureRepo creates the repository if it does not exist. An already-existing
// repository is success, which makes repeated publishes idempotent.
func (t *HTTPTransport) EnsureRepo(ctx context.Context, repo string, kind RepoKind) error {
	res, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"id": repo, "kind": string(kind)}).
		Post("/api/repos")
	if err != nil {
		return err
	}
	switch res.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusConflict:
		return nil
	}
	return fmt.Errorf("hub returned %s creating repository %s", res.Status(), repo)
}
