package ignore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// fileRuleSet holds the patterns of one rule file. Patterns are matched
// against paths relative to the directory holding the file.
type fileRuleSet struct {
	base  string
	rules gitignore.GitIgnore
}

// ParseRules compiles gitignore patterns read from r, anchored at base. The
// first syntax error aborts parsing and is returned.
func ParseRules(r io.Reader, base string) (RuleSet, error) {
	var parseErr error
	rules := gitignore.New(r, base, func(e gitignore.Error) bool {
		parseErr = e
		return false
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return &fileRuleSet{base: base, rules: rules}, nil
}

// loadDir loads the rule file named fileName from dir. It returns a nil
// RuleSet when there is no such file.
func loadDir(dir, fileName string) (RuleSet, error) {
	path := filepath.Join(dir, fileName)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &utils.IOError{Op: "load ignore rules", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &utils.IOError{Op: "load ignore rules", Path: path, Err: fmt.Errorf("is a directory")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &utils.IOError{Op: "load ignore rules", Path: path, Err: err}
	}
	defer f.Close()

	rs, err := ParseRules(f, dir)
	if err != nil {
		return nil, &utils.IOError{Op: "parse ignore rules", Path: path, Err: err}
	}
	return rs, nil
}

func (r *fileRuleSet) Match(path string, isDir bool) Verdict {
	rel, ok := relativeTo(r.base, path)
	if !ok {
		return NoMatch
	}

	m := r.rules.Relative(rel, isDir)
	if m == nil {
		return NoMatch
	}
	if m.Include() {
		return Whitelisted
	}
	return Ignored
}

// relativeTo returns path relative to base in slash form, or false when path
// is base itself or lies outside it.
func relativeTo(base, path string) (string, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
