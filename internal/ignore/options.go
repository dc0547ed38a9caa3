package ignore

import "github.com/bethropolis/dir-tree/internal/utils"

// Option configures a chain built by New
type Option func(*config)

// WithLogger sets the logger used for rule loading diagnostics
func WithLogger(logger utils.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDisabled turns off all rule files. Only the .git rule remains.
func WithDisabled(disabled bool) Option {
	return func(c *config) {
		c.disabled = disabled
	}
}

// WithFileName changes the per-directory rule file name
func WithFileName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.fileName = name
		}
	}
}

// WithGlobalPatterns replaces the global excludes read from the user's git
// configuration with the given lines. Passing no lines gives an empty
// global rule-set.
func WithGlobalPatterns(lines ...string) Option {
	return func(c *config) {
		c.globalPatterns = lines
		c.globalOverride = true
	}
}
