package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/quillml/quill/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app config
// and command, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, *app.Command, bool, error) {
	flagSet := flag.NewFlagSet("quill", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Quill - a model registry and configuration tool.

Usage:
  quill [options] COMMAND [args]

Commands:
  keys [KIND]
    List registered module keys, optionally for one kind.
  inspect PATH_OR_REPO
    Resolve a config from a local directory or hub repository and print it.
  fetch PATH_OR_REPO [FILENAME]
    Print a raw config document, caching remote ones locally.
  push LOCAL_DIR OWNER/REPO
    Validate a local config document and publish it to the hub.
  cache
    List artifacts held in the local cache mirror.

Options:
`)
		flagSet.PrintDefaults()
	}

	hubURLFlag := flagSet.String("hub-url", app.DefaultHubURL, "Base URL of the hub.")
	cacheDirFlag := flagSet.String("cache-dir", "", "Local cache directory for hub artifacts.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strictFlag := flagSet.Bool("strict", false, "Fail on duplicate registrations and unknown config fields.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil, true, nil
		}
		return nil, nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cmd := &app.Command{Verb: flagSet.Arg(0), Args: flagSet.Args()[1:]}
	switch cmd.Verb {
	case "keys", "inspect", "fetch", "push", "cache":
		// valid
	default:
		return nil, nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cmd.Verb)}
	}

	config, err := app.NewConfig(app.Config{
		HubURL:    *hubURLFlag,
		CacheDir:  *cacheDirFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		Strict:    *strictFlag,
	})
	if err != nil {
		return nil, nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, cmd, false, nil
}
