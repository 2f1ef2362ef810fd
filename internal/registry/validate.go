package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillml/quill/internal/ctxlog"
)

// Validate performs a parity check between registered entries and the
// configs their factories produce. A module whose default config carries a
// different name or kind than its registration would be resolvable under one
// identity and serialized under another, so the mismatch is caught at
// bootstrap instead of surfacing as a confusing load failure later.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []string
	for kind, partition := range r.entries {
		for key, entry := range partition {
			if entry.NewConfig == nil {
				errs = append(errs, fmt.Sprintf("%s %q: entry has no config factory", kind, key))
				continue
			}
			if entry.New == nil {
				errs = append(errs, fmt.Sprintf("%s %q: entry has no module factory", kind, key))
			}
			cfg := entry.NewConfig()
			if cfg == nil {
				errs = append(errs, fmt.Sprintf("%s %q: config factory returned nil", kind, key))
				continue
			}
			if got := NormalizeKey(cfg.ConfigName()); got != key {
				errs = append(errs, fmt.Sprintf("%s %q: default config is named %q", kind, key, cfg.ConfigName()))
			}
			if got := cfg.ConfigKind(); got != kind {
				errs = append(errs, fmt.Sprintf("%s %q: default config declares config_type %q", kind, key, got))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	logger.Debug("Registry validation passed.")
	return nil
}
