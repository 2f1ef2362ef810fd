package resolver

import "github.com/quillml/quill/internal/config"

type options struct {
	filename  string
	subfolder string
	overrides map[string]any
	policy    config.MergePolicy
}

// Option customizes a single Load call.
type Option func(*options)

func buildOptions(opts []Option) options {
	o := options{filename: config.DefaultFilename, policy: config.WarnAndSet}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFilename overrides the document filename (default "config.yaml").
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithSubfolder reads the document from a subfolder of the path or repo.
func WithSubfolder(subfolder string) Option {
	return func(o *options) { o.subfolder = subfolder }
}

// WithOverrides applies caller overrides after the document is decoded.
func WithOverrides(overrides map[string]any) Option {
	return func(o *options) { o.overrides = overrides }
}

// WithStrict rejects override keys the resolved config does not declare.
func WithStrict() Option {
	return func(o *options) { o.policy = config.Strict }
}
