package ignore

import (
	"github.com/bethropolis/dir-tree/internal/utils"
)

// Verdict is what a single rule-set says about a path.
type Verdict int

const (
	// NoMatch means no pattern in the rule-set matched.
	NoMatch Verdict = iota
	// Ignored means the last matching pattern was a plain ignore pattern.
	Ignored
	// Whitelisted means the last matching pattern was a negated one.
	Whitelisted
)

func (v Verdict) String() string {
	switch v {
	case Ignored:
		return "ignored"
	case Whitelisted:
		return "whitelisted"
	default:
		return "no match"
	}
}

// RuleSet is one compiled collection of gitignore patterns. Paths passed to
// Match are absolute.
type RuleSet interface {
	Match(path string, isDir bool) Verdict
}

// Chain is one node of the ignore chain. Nodes are never modified after they
// are built; entering a directory builds a new node pointing at the current
// one.
type Chain struct {
	parent   *Chain
	dir      string
	ruleSets []RuleSet // nearest first
	cfg      *config
}

// config is shared by every node of a chain.
type config struct {
	fileName       string
	disabled       bool
	globalPatterns []string
	globalOverride bool
	logger         utils.Logger
}

func defaultConfig() *config {
	return &config{
		fileName: DefaultFileName,
		logger:   utils.NoopLogger{},
	}
}
