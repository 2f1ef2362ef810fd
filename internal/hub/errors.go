package hub

import "fmt"

// ConfigFileMissingError reports a local directory that exists but does not
// contain the expected file. This is always fatal; the locator never retries
// such a path remotely.
type ConfigFileMissingError struct {
	Dir      string
	Filename string
}

func (e *ConfigFileMissingError) Error() string {
	return fmt.Sprintf("path %q exists locally but the config file %q is missing", e.Dir, e.Filename)
}

// ArtifactNotFoundError reports that neither local nor remote resolution of
// an artifact succeeded. The underlying transport failure is preserved as
// the cause.
type ArtifactNotFoundError struct {
	Repo string
	Path string
	Err  error
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("artifact %q not found in %q: %v", e.Path, e.Repo, e.Err)
}

func (e *ArtifactNotFoundError) Unwrap() error { return e.Err }
