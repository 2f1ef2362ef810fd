package registry

import (
	"fmt"

	"github.com/quillml/quill/internal/config"
)

// UnknownModuleError reports a lookup for a key that is not registered in the
// requested kind partition.
type UnknownModuleError struct {
	Kind config.Type
	Key  string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("no %s module registered under key %q", e.Kind, e.Key)
}

// DuplicateKeyError reports a second registration of the same kind-qualified
// key under the strict policy.
type DuplicateKeyError struct {
	Kind config.Type
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s module %q is already registered", e.Kind, e.Key)
}
