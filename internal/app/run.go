package app

import (
	"context"
	"fmt"

	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/ctxlog"
	"github.com/quillml/quill/internal/hub"
)

// Command is a parsed CLI verb with its positional arguments.
type Command struct {
	Verb string
	Args []string
}

// Run executes a single CLI command against the application instance.
func (a *App) Run(ctx context.Context, cmd *Command) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "verb", cmd.Verb)

	switch cmd.Verb {
	case "keys":
		return a.runKeys(cmd.Args)
	case "inspect":
		return a.runInspect(ctx, cmd.Args)
	case "fetch":
		return a.runFetch(ctx, cmd.Args)
	case "push":
		return a.runPush(ctx, cmd.Args)
	case "cache":
		return a.runCache()
	}
	return fmt.Errorf("unknown command %q", cmd.Verb)
}

// runKeys prints the registered keys, optionally for a single kind.
func (a *App) runKeys(args []string) error {
	kinds := config.Types
	if len(args) > 0 {
		kind, err := config.ParseType(args[0])
		if err != nil {
			return err
		}
		kinds = []config.Type{kind}
	}
	for _, kind := range kinds {
		for _, key := range a.registry.Keys(kind) {
			fmt.Fprintf(a.outW, "%s\t%s\n", kind, key)
		}
	}
	return nil
}

// runInspect resolves a config from a path or repository and prints the
// populated document, defaults included.
func (a *App) runInspect(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("inspect requires a path or repository id")
	}
	cfg, err := a.builder.Resolver().Load(ctx, args[0])
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = a.outW.Write(data)
	return err
}

// runFetch resolves a raw config document and prints it verbatim. Remote
// documents land in the local cache as a side effect.
func (a *App) runFetch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("fetch requires a path or repository id")
	}
	filename := config.DefaultFilename
	if len(args) > 1 {
		filename = args[1]
	}
	data, err := a.locator.Resolve(ctx, args[0], filename, "")
	if err != nil {
		return err
	}
	_, err = a.outW.Write(data)
	return err
}

// runCache lists the artifacts held in the local cache mirror.
func (a *App) runCache() error {
	files, err := a.locator.CachedFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(a.outW, f)
	}
	return nil
}

// runPush validates a local config document against the registry and
// publishes it to a hub repository.
func (a *App) runPush(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("push requires a local path and a repository id")
	}
	localPath, repo := args[0], args[1]

	data, err := a.locator.Resolve(ctx, localPath, config.DefaultFilename, "")
	if err != nil {
		return err
	}
	cfg, err := a.builder.Resolver().LoadBytes(ctx, data)
	if err != nil {
		return err
	}

	repoKind := hub.RepoModel
	if cfg.ConfigKind() == config.TypeDataset {
		repoKind = hub.RepoDataset
	}
	message := fmt.Sprintf("Upload %s config for %s", cfg.ConfigKind(), cfg.ConfigName())
	if err := a.locator.Store(ctx, data, repo, config.DefaultFilename, "", repoKind, message); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "pushed %s to %s\n", cfg.ConfigName(), repo)
	return nil
}
