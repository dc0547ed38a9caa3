// Package walker handles directory traversal for the tree listing.
//
// The walk is depth-first and single-threaded. Every directory is listed,
// filtered and sorted before any of its entries is reported, so the visitor
// always knows which entry is the last one of its directory.
package walker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bethropolis/dir-tree/internal/entry"
	"github.com/bethropolis/dir-tree/internal/filter"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
)

// Walker lists directory trees through a PatternFilter
type Walker struct {
	filter *filter.PatternFilter
	opts   WalkOptions
	lstat  entry.LstatFunc
}

type kept struct {
	entry entry.Entry
	child filter.State
}

// New creates a Walker
func New(f *filter.PatternFilter, opts ...Option) *Walker {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if f == nil {
		f = filter.New(filter.Config{})
	}
	return &Walker{filter: f, opts: options, lstat: os.Lstat}
}

// Walk lists the tree below root, reporting entries to v and counting them
// in stats. An error opening root, or loading an ignore file anywhere below
// it, aborts the walk. A directory that cannot be read is skipped with a
// warning; entries reported before the failure stay reported.
func (w *Walker) Walk(root string, v Visitor, stats *Stats) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("walker: failed to get absolute path for '%s': %w", root, err)
	}
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return &utils.IOError{Op: "open root", Path: root, Err: err}
	}
	info, err := os.Stat(realRoot)
	if err != nil {
		return &utils.IOError{Op: "open root", Path: root, Err: err}
	}
	if !info.IsDir() {
		return &utils.IOError{Op: "open root", Path: root, Err: errors.New("not a directory")}
	}

	w.opts.Logger.Debug("walker.Walk started. Root: %s (resolved %s)", root, realRoot)

	names, err := readNames(realRoot)
	if err != nil {
		return err
	}

	base, err := ignore.New(realRoot, w.opts.IgnoreOptions...)
	if err != nil {
		return fmt.Errorf("walker: %w", err)
	}
	chain, err := base.EnterDir(realRoot)
	if err != nil {
		return fmt.Errorf("walker: %w", err)
	}

	entries := w.list(realRoot, names, chain, 0)

	// tree counts the root itself only when something is listed under it
	if len(entries) > 0 {
		stats.Dirs++
	}

	return w.emit(entries, 1, chain, v, stats)
}

// readNames lists the names in dir without looking at their types, so one
// unreadable item costs only that item.
func readNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &utils.IOError{Op: "read directory", Path: dir, Err: err}
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &utils.IOError{Op: "read directory", Path: dir, Err: err}
	}
	return names, nil
}

// list returns the entries of dir that pass the filter, sorted.
func (w *Walker) list(dir string, names []string, chain *ignore.Chain, state filter.State) []kept {
	out := make([]kept, 0, len(names))
	for _, name := range names {
		e, err := entry.New(dir, name, w.lstat)
		if err != nil {
			w.opts.Logger.Warn("Skipping entry: %v", err)
			w.opts.Tracker.Track(entry.Join(dir, name), ReasonFileTypeError, false)
			continue
		}

		decision := w.filter.Evaluate(e, state, chain)
		if !decision.Keep {
			w.opts.Tracker.Track(e.Path(), reasonFor(decision.Reason), e.IsDir())
			continue
		}
		out = append(out, kept{entry: e, child: decision.Child})
	}

	slices.SortFunc(out, func(a, b kept) int {
		return w.opts.Sorter(a.entry, b.entry)
	})
	return out
}

// emit reports entries found at depth and descends into the directories
// among them.
func (w *Walker) emit(entries []kept, depth int, chain *ignore.Chain, v Visitor, stats *Stats) error {
	for i, k := range entries {
		if err := v.Visit(k.entry, depth, i == len(entries)-1); err != nil {
			return fmt.Errorf("walker: %w", err)
		}

		if !k.entry.IsDir() {
			stats.Files++
			continue
		}
		stats.Dirs++

		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.descend(k, depth, chain, v, stats); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) descend(k kept, depth int, parent *ignore.Chain, v Visitor, stats *Stats) error {
	path := k.entry.Path()

	// read before loading rules so an unreadable directory is only skipped
	names, err := readNames(path)
	if err != nil {
		w.opts.Logger.Warn("Not expanding %q: %v", path, err)
		w.opts.Tracker.Track(path, ReasonReadDirError, true)
		return nil
	}

	chain, err := parent.EnterDir(path)
	if err != nil {
		return fmt.Errorf("walker: %w", err)
	}

	children := w.list(path, names, chain, k.child)
	return w.emit(children, depth+1, chain, v, stats)
}
