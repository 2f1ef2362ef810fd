package builder

import (
	"github.com/quillml/quill/internal/config"
	"github.com/quillml/quill/internal/resolver"
)

type options struct {
	filename      string
	subfolder     string
	overrides     map[string]any
	policy        config.MergePolicy
	commitMessage string
}

// Option customizes a single builder call.
type Option func(*options)

func buildOptions(opts []Option) options {
	o := options{filename: config.DefaultFilename, policy: config.WarnAndSet}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) resolverOptions() []resolver.Option {
	out := []resolver.Option{
		resolver.WithFilename(o.filename),
		resolver.WithSubfolder(o.subfolder),
	}
	if len(o.overrides) > 0 {
		out = append(out, resolver.WithOverrides(o.overrides))
	}
	if o.policy == config.Strict {
		out = append(out, resolver.WithStrict())
	}
	return out
}

// WithFilename overrides the config document filename.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithSubfolder places the config document inside a subfolder.
func WithSubfolder(subfolder string) Option {
	return func(o *options) { o.subfolder = subfolder }
}

// WithOverrides applies config overrides before construction.
func WithOverrides(overrides map[string]any) Option {
	return func(o *options) { o.overrides = overrides }
}

// WithStrict rejects overrides naming fields the config does not declare.
func WithStrict() Option {
	return func(o *options) { o.policy = config.Strict }
}

// WithCommitMessage sets the commit message used by Push.
func WithCommitMessage(message string) Option {
	return func(o *options) { o.commitMessage = message }
}
