package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillml/quill/internal/app"
)

func TestParseCommand(t *testing.T) {
	var out bytes.Buffer
	cfg, cmd, shouldExit, err := Parse([]string{"inspect", "acme/sentiment"}, &out)
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "inspect", cmd.Verb)
	assert.Equal(t, []string{"acme/sentiment"}, cmd.Args)
	assert.Equal(t, app.DefaultHubURL, cfg.HubURL)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, cmd, _, err := Parse([]string{
		"-hub-url", "https://hub.example.com",
		"-cache-dir", "/tmp/quill-cache",
		"-log-format", "json",
		"-log-level", "debug",
		"-strict",
		"keys", "model",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "keys", cmd.Verb)
	assert.Equal(t, []string{"model"}, cmd.Args)
	assert.Equal(t, "https://hub.example.com", cfg.HubURL)
	assert.Equal(t, "/tmp/quill-cache", cfg.CacheDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestParseNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	_, _, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseInvalidLogFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, _, err := Parse([]string{"-log-format", "xml", "keys"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseInvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, _, err := Parse([]string{"-log-level", "loud", "keys"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseUnknownVerb(t *testing.T) {
	var out bytes.Buffer
	_, _, _, err := Parse([]string{"frobnicate"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, "frobnicate")
}
