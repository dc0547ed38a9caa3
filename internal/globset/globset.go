// Package globset compiles the include (-P) and exclude (-I) patterns into a
// set matched against entry names.
package globset

import (
	"fmt"
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bmatcuk/doublestar/v4"
)

// Set is a compiled collection of globs. A name matches the set when it
// matches any glob in it.
type Set struct {
	globs      []string
	ignoreCase bool
}

// Compile builds a Set from patterns. Each pattern may hold several globs
// separated by '|'. It returns a nil Set when no globs are given, so callers
// can tell "no patterns" apart from "matches nothing".
func Compile(patterns []string, ignoreCase bool) (*Set, error) {
	var globs []string
	for _, pattern := range patterns {
		for _, glob := range strings.Split(pattern, "|") {
			if glob == "" {
				continue
			}
			if !doublestar.ValidatePattern(glob) {
				return nil, &utils.ConfigError{Field: "pattern", Err: fmt.Errorf("invalid glob %q", glob)}
			}
			if ignoreCase {
				glob = strings.ToLower(glob)
			}
			globs = append(globs, glob)
		}
	}

	if len(globs) == 0 {
		return nil, nil
	}
	return &Set{globs: globs, ignoreCase: ignoreCase}, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// fixed pattern tables.
func MustCompile(ignoreCase bool, patterns ...string) *Set {
	s, err := Compile(patterns, ignoreCase)
	if err != nil {
		panic(err)
	}
	return s
}

// Match reports whether name matches any glob. A nil Set matches nothing.
func (s *Set) Match(name string) bool {
	if s == nil {
		return false
	}
	if s.ignoreCase {
		name = strings.ToLower(name)
	}
	for _, glob := range s.globs {
		// patterns were validated at compile time
		if ok, _ := doublestar.Match(glob, name); ok {
			return true
		}
	}
	return false
}

// Len returns the number of compiled globs.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.globs)
}

func (s *Set) String() string {
	if s == nil {
		return "<none>"
	}
	return strings.Join(s.globs, "|")
}
