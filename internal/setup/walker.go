// Package setup turns the command configuration into a ready walker
package setup

import (
	"fmt"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/filter"
	"github.com/bethropolis/dir-tree/internal/globset"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
)

// ConfigureWalker compiles the patterns of cfg and builds the walker shared
// by every root of the run. The returned tracker is nil unless skipped items
// were asked for. Malformed patterns are reported as a ConfigError.
func ConfigureWalker(cfg *config.Config, log utils.Logger, extra ...walker.Option) (*walker.Walker, *walker.SkippedTracker, error) {
	log = utils.OrNoop(log)

	include, err := globset.Compile(cfg.Include, cfg.IgnoreCase)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: include patterns: %w", err)
	}
	exclude, err := globset.Compile(cfg.Exclude, cfg.IgnoreCase)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: exclude patterns: %w", err)
	}

	if include != nil {
		log.Debug("Include patterns (%d globs): %s", include.Len(), include)
	}
	if exclude != nil {
		log.Debug("Exclude patterns (%d globs): %s", exclude.Len(), exclude)
	}

	f := filter.New(filter.Config{
		ShowHidden: cfg.ShowHidden,
		DirsOnly:   cfg.DirsOnly,
		Include:    include,
		Exclude:    exclude,
		Compat:     cfg.Compat,
		MatchDirs:  cfg.MatchDirs,
	}, filter.WithLogger(log))

	sorter := walker.ByName
	if cfg.DirsFirst {
		sorter = walker.DirsFirst
	}
	if cfg.Reverse {
		sorter = walker.Reverse(sorter)
	}

	fileName := cfg.IgnoreFile
	if fileName == "" {
		fileName = ignore.DefaultFileName
	}

	respect := cfg.RespectIgnore()
	if respect {
		log.Debug("Honoring %s files and global excludes", fileName)
	} else {
		log.Debug("Ignore files disabled; only .git directories are excluded")
	}

	var tracker *walker.SkippedTracker
	if cfg.ShowSkipped {
		tracker = walker.NewSkippedTracker(64)
	}

	opts := []walker.Option{
		walker.WithLogger(log),
		walker.WithMaxDepth(cfg.MaxDepth),
		walker.WithSorter(sorter),
		walker.WithSkippedTracker(tracker),
		walker.WithIgnoreOptions(
			ignore.WithLogger(log),
			ignore.WithDisabled(!respect),
			ignore.WithFileName(fileName),
		),
	}
	opts = append(opts, extra...)

	return walker.New(f, opts...), tracker, nil
}
