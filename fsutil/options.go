package fsutil

import (
	"log/slog"
	"os"
)

const defaultConcurrency = 4

// Option configures a file operation.
type Option func(*options)

type options struct {
	overwrite   bool
	concurrency int
	perm        os.FileMode
	logger      *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		overwrite:   true,
		concurrency: defaultConcurrency,
		perm:        0o644,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOverwrite controls whether existing destinations are replaced.
// Overwriting is enabled by default.
func WithOverwrite(overwrite bool) Option {
	return func(o *options) {
		o.overwrite = overwrite
	}
}

// WithConcurrency limits how many files CopyTree copies at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithPerm sets the permission bits of created files.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithLogger sets the logger used to report progress of tree operations.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
