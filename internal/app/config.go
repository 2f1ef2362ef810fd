package app

import (
	"os"
	"path/filepath"
)

// DefaultHubURL is the hub queried when no other endpoint is configured.
const DefaultHubURL = "https://hub.quillml.dev"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	HubURL   string
	CacheDir string

	LogFormat string
	LogLevel  string

	// Strict makes duplicate registrations and unknown override fields fatal
	// instead of warnings.
	Strict bool
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.HubURL == "" {
		cfg.HubURL = DefaultHubURL
	}
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		cfg.CacheDir = filepath.Join(base, "quill")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
