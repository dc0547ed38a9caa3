// Package filter decides which directory entries make it into the tree.
//
// Besides the plain hidden/include/exclude checks it carries a small state
// from each directory to its children. In compatibility mode, a directory
// whose name matches an include pattern (with --matchdirs) lets the files
// directly inside it through without matching, the way tree does. The
// relaxation covers one level only: deeper files must match again.
package filter

import (
	"github.com/bethropolis/dir-tree/internal/entry"
	"github.com/bethropolis/dir-tree/internal/globset"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
)

// State is carried from a directory to its children. 0 means no ancestor
// matched an include pattern, 1 means the immediate parent did, and 2 or more
// means an ancestor further up did. Only compatibility mode uses it.
type State int

// Reason says why an entry was rejected.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonHidden      Reason = "Ignored (Hidden Rule)"
	ReasonDirsOnly    Reason = "Filtered (Directories Only)"
	ReasonNotIncluded Reason = "Filtered (Include Pattern Mismatch)"
	ReasonExcluded    Reason = "Filtered (Exclude Pattern Match)"
	ReasonIgnoreRule  Reason = "Ignored (Gitignore Rule)"
)

// Config holds the filtering part of the run configuration. It is not
// modified once a PatternFilter has been built from it.
type Config struct {
	ShowHidden bool
	DirsOnly   bool
	Include    *globset.Set
	Exclude    *globset.Set
	Compat     bool
	MatchDirs  bool
}

// Decision is the outcome of evaluating one entry.
type Decision struct {
	Keep   bool
	Child  State
	Reason Reason
}

// PatternFilter applies Config to directory entries
type PatternFilter struct {
	cfg    Config
	logger utils.Logger
}

// Option configures a PatternFilter
type Option func(*PatternFilter)

// WithLogger sets the logger used for rejection diagnostics
func WithLogger(logger utils.Logger) Option {
	return func(f *PatternFilter) {
		f.logger = utils.OrNoop(logger)
	}
}

// New creates a PatternFilter
func New(cfg Config, opts ...Option) *PatternFilter {
	f := &PatternFilter{cfg: cfg, logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Evaluate decides whether e is kept when listed in a directory whose state
// is parent, and which state to hand to e's children.
func (f *PatternFilter) Evaluate(e entry.Entry, parent State, chain *ignore.Chain) Decision {
	if !f.cfg.ShowHidden && e.IsHidden() {
		return f.reject(e, ReasonHidden)
	}

	child := parent
	if e.IsDir() {
		var reason Reason
		child, reason = f.dir(e, parent)
		if reason != ReasonNone {
			return f.reject(e, reason)
		}
	} else if reason := f.file(e, parent); reason != ReasonNone {
		return f.reject(e, reason)
	}

	if !chain.Include(e.Path(), e.IsDir()) {
		return f.reject(e, ReasonIgnoreRule)
	}

	return Decision{Keep: true, Child: child}
}

func (f *PatternFilter) file(e entry.Entry, parent State) Reason {
	if f.cfg.DirsOnly {
		return ReasonDirsOnly
	}
	if parent != 1 && f.cfg.Include != nil && !f.cfg.Include.Match(e.Name()) {
		return ReasonNotIncluded
	}
	if f.cfg.Exclude.Match(e.Name()) {
		return ReasonExcluded
	}
	return ReasonNone
}

func (f *PatternFilter) dir(e entry.Entry, parent State) (State, Reason) {
	if f.cfg.Compat {
		matched := parent == 0 && f.cfg.MatchDirs && f.cfg.Include.Match(e.Name())

		child := parent
		if parent >= 1 || matched {
			child = parent + 1
		}
		if f.cfg.Exclude.Match(e.Name()) {
			return child, ReasonExcluded
		}
		return child, ReasonNone
	}

	if f.cfg.Include != nil && !f.cfg.Include.Match(e.Name()) {
		return parent, ReasonNotIncluded
	}
	if f.cfg.Exclude.Match(e.Name()) {
		return parent, ReasonExcluded
	}
	return parent, ReasonNone
}

func (f *PatternFilter) reject(e entry.Entry, reason Reason) Decision {
	f.logger.Debug("filter: rejected %q: %s", e.Path(), reason)
	return Decision{Reason: reason}
}
