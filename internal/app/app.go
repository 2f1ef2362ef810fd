package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/quillml/quill/internal/builder"
	"github.com/quillml/quill/internal/ctxlog"
	"github.com/quillml/quill/internal/hub"
	"github.com/quillml/quill/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	locator  *hub.Locator
	builder  *builder.Builder
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// When no modules are given, the compiled-in core module set is registered.
func NewApp(outW io.Writer, appConfig *Config, transport hub.Transport, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var regOpts []registry.Option
	if appConfig.Strict {
		regOpts = append(regOpts, registry.WithStrict())
	}
	reg := registry.New(regOpts...)

	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			// A failed registration is a programmer error (two modules
			// claiming one key under the strict policy), so we panic.
			panic(fmt.Errorf("failed to register module: %w", err))
		}
	}
	logger.Debug("All modules registered.", "count", len(modules))

	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	if transport == nil {
		transport = hub.NewHTTPTransport(appConfig.HubURL)
	}
	locator := hub.NewLocator(transport, appConfig.CacheDir)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		locator:  locator,
		builder:  builder.New(reg, locator),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry { return a.registry }

// Builder returns the application's module builder.
func (a *App) Builder() *builder.Builder { return a.builder }

// Locator returns the application's artifact locator.
func (a *App) Locator() *hub.Locator { return a.locator }
