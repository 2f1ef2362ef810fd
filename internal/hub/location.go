package hub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RepoKind classifies a hub repository.
type RepoKind string

const (
	RepoModel   RepoKind = "model"
	RepoDataset RepoKind = "dataset"
	RepoSpace   RepoKind = "space"
)

// Location is the result of resolving a user-supplied path once. It is
// computed per call and never cached; repeated resolution is cheap and keeps
// the answer current when the filesystem changes between calls.
type Location struct {
	IsLocal      bool
	ResolvedPath string
}

// ParseRepoID splits an "owner/name" repository identifier. Anything else is
// rejected; no other path schemes exist.
func ParseRepoID(s string) (owner, name string, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository id %q: expected \"owner/name\"", s)
	}
	return parts[0], parts[1], nil
}

// Locate decides whether path names a local directory or a hub repository.
// For a local directory the resolved path points at the file inside it; for
// a repository it is the file's path within the repo.
func (l *Locator) Locate(path, filename, subfolder string) Location {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return Location{IsLocal: true, ResolvedPath: filepath.Join(path, subfolder, filename)}
	}
	remote := filename
	if subfolder != "" {
		remote = subfolder + "/" + filename
	}
	return Location{IsLocal: false, ResolvedPath: remote}
}
