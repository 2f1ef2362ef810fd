package app

import (
	"bytes"
	"sync"
	"testing"

	"github.com/quillml/quill/internal/hub"
	"github.com/quillml/quill/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance wired to the given transport for
// testing, capturing its log output.
func SetupAppTest(t *testing.T, appConfig *Config, transport hub.Transport, modules ...registry.Module) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	if appConfig.CacheDir == "" {
		appConfig.CacheDir = t.TempDir()
	}
	testApp := NewApp(logBuffer, appConfig, transport, modules...)
	return testApp, logBuffer
}
