package walker

import (
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
)

// WalkOptions configures the behavior of the Walker
type WalkOptions struct {
	Logger        utils.Logger
	MaxDepth      int // 0 means unlimited
	Sorter        Sorter
	IgnoreOptions []ignore.Option
	Tracker       *SkippedTracker
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: utils.NoopLogger{},
		Sorter: ByName,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithMaxDepth stops expanding directories at the given depth. Directories at
// that depth are still listed and counted.
func WithMaxDepth(depth int) Option {
	return func(opts *WalkOptions) {
		if depth > 0 {
			opts.MaxDepth = depth
		}
	}
}

// WithSorter sets the order entries are listed in
func WithSorter(s Sorter) Option {
	return func(opts *WalkOptions) {
		if s != nil {
			opts.Sorter = s
		}
	}
}

// WithIgnoreOptions passes options to the ignore chain built for each root
func WithIgnoreOptions(ignoreOpts ...ignore.Option) Option {
	return func(opts *WalkOptions) {
		opts.IgnoreOptions = append(opts.IgnoreOptions, ignoreOpts...)
	}
}

// WithSkippedTracker records every rejected or unreadable entry in t
func WithSkippedTracker(t *SkippedTracker) Option {
	return func(opts *WalkOptions) {
		opts.Tracker = t
	}
}
