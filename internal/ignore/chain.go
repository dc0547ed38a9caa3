package ignore

import (
	"fmt"
	"path/filepath"
)

// New builds the chain node that sits above a traversal root. It holds the
// rule files of every ancestor of root, nearest first, followed by the global
// excludes. The root's own rule file is not included; the walker adds it with
// EnterDir(root) like any other directory.
//
// root should be an absolute path with symlinks resolved, since rules are
// matched against absolute paths.
func New(root string, opts ...Option) (*Chain, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for root '%s': %w", root, err)
	}

	node := &Chain{dir: filepath.Dir(absRoot), cfg: cfg}
	if cfg.disabled {
		cfg.logger.Debug("ignore.New: rule files disabled for %s", absRoot)
		return node, nil
	}

	var sets []RuleSet
	for _, dir := range ancestors(absRoot) {
		rs, err := loadDir(dir, cfg.fileName)
		if err != nil {
			return nil, fmt.Errorf("ignore: %w", err)
		}
		if rs != nil {
			cfg.logger.Debug("ignore.New: loaded %s from ancestor %s", cfg.fileName, dir)
			sets = append(sets, rs)
		}
	}

	// nearest ancestor first
	for i, j := 0, len(sets)-1; i < j; i, j = i+1, j-1 {
		sets[i], sets[j] = sets[j], sets[i]
	}

	global, err := cfg.globalRules(absRoot)
	if err != nil {
		return nil, fmt.Errorf("ignore: %w", err)
	}
	if global != nil {
		sets = append(sets, global)
	}

	node.ruleSets = sets
	return node, nil
}

func (c *config) globalRules(root string) (RuleSet, error) {
	if c.globalOverride {
		return &patternRuleSet{base: root, patterns: parsePatterns(c.globalPatterns)}, nil
	}
	ps, err := loadGlobalPatterns(c.logger)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, nil
	}
	return &patternRuleSet{base: root, patterns: ps}, nil
}

// ancestors lists the directories above dir, filesystem root first. dir
// itself is not included.
func ancestors(dir string) []string {
	var out []string
	for p := filepath.Dir(dir); p != dir; p = filepath.Dir(p) {
		out = append(out, p)
		dir = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// EnterDir returns the node for dir, a directory below the current node. The
// new node holds dir's own rule file, if there is one.
func (c *Chain) EnterDir(dir string) (*Chain, error) {
	cfg := c.config()
	child := &Chain{parent: c, dir: dir, cfg: cfg}
	if cfg.disabled {
		return child, nil
	}

	rs, err := loadDir(dir, cfg.fileName)
	if err != nil {
		return nil, fmt.Errorf("ignore: %w", err)
	}
	if rs != nil {
		cfg.logger.Debug("ignore.EnterDir: loaded %s", filepath.Join(dir, cfg.fileName))
		child.ruleSets = []RuleSet{rs}
	}
	return child, nil
}

func (c *Chain) config() *config {
	if c == nil || c.cfg == nil {
		return defaultConfig()
	}
	return c.cfg
}
