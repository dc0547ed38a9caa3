package ignore

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/go-git/go-billy/v5/osfs"
	gitpattern "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// patternRuleSet matches go-git patterns against paths relative to base.
type patternRuleSet struct {
	base     string
	patterns []gitpattern.Pattern
}

func (p *patternRuleSet) Match(path string, isDir bool) Verdict {
	rel, ok := relativeTo(p.base, path)
	if !ok {
		return NoMatch
	}
	parts := strings.Split(rel, "/")

	// later patterns take precedence
	for i := len(p.patterns) - 1; i >= 0; i-- {
		switch p.patterns[i].Match(parts, isDir) {
		case gitpattern.Exclude:
			return Ignored
		case gitpattern.Include:
			return Whitelisted
		}
	}
	return NoMatch
}

// parsePatterns compiles gitignore lines, skipping blanks and comments.
func parsePatterns(lines []string) []gitpattern.Pattern {
	var ps []gitpattern.Pattern
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitpattern.ParsePattern(line, nil))
	}
	return ps
}

func readPatterns(r io.Reader) ([]gitpattern.Pattern, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parsePatterns(lines), nil
}

// loadGlobalPatterns reads the user's global excludes: core.excludesFile from
// ~/.gitconfig, falling back to git's default location under
// $XDG_CONFIG_HOME (or ~/.config).
func loadGlobalPatterns(logger utils.Logger) ([]gitpattern.Pattern, error) {
	ps, err := gitpattern.LoadGlobalPatterns(osfs.New(string(filepath.Separator)))
	if err != nil {
		return nil, &utils.IOError{Op: "load global ignore rules", Path: "~/.gitconfig", Err: err}
	}
	if len(ps) > 0 {
		logger.Debug("ignore: loaded %d global patterns from core.excludesFile", len(ps))
		return ps, nil
	}

	path := defaultGlobalExcludesPath()
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &utils.IOError{Op: "load global ignore rules", Path: path, Err: err}
	}
	defer f.Close()

	ps, err = readPatterns(f)
	if err != nil {
		return nil, &utils.IOError{Op: "load global ignore rules", Path: path, Err: err}
	}
	logger.Debug("ignore: loaded %d global patterns from %s", len(ps), path)
	return ps, nil
}

func defaultGlobalExcludesPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}
