package ignore

import (
	"path/filepath"
)

// Include reports whether path survives the rules of the chain. path must be
// absolute. Directories named .git are always excluded.
//
// Rule-sets are consulted from the nearest node outwards. The first rule-set
// with a matching pattern decides: a whitelist pattern includes, a plain
// pattern excludes. With no match anywhere the path is included.
func (c *Chain) Include(path string, isDir bool) bool {
	if isDir && filepath.Base(path) == ".git" {
		return false
	}

	for n := c; n != nil; n = n.parent {
		for _, rs := range n.ruleSets {
			switch v := rs.Match(path, isDir); v {
			case Whitelisted:
				return true
			case Ignored:
				n.config().logger.Debug("ignore.Include: %q %s by rules at %s", path, v, n.dir)
				return false
			}
		}
	}
	return true
}
