package walker

import (
	"github.com/bethropolis/dir-tree/internal/entry"
	"github.com/bethropolis/dir-tree/internal/filter"
)

// Visitor receives the surviving entries in depth-first order. depth is 1 for
// the children of the root. isLast is set on the last entry of a directory.
type Visitor interface {
	Visit(e entry.Entry, depth int, isLast bool) error
}

// VisitorFunc adapts a function to the Visitor interface
type VisitorFunc func(e entry.Entry, depth int, isLast bool) error

func (f VisitorFunc) Visit(e entry.Entry, depth int, isLast bool) error {
	return f(e, depth, isLast)
}

// Stats counts what the listing showed. One Stats is shared by every root of
// a run, so the report covers all of them.
type Stats struct {
	Dirs  int
	Files int
}

// SkippedReason clarifies why a file/directory was not listed.
type SkippedReason string

const (
	ReasonReadDirError  SkippedReason = "Skipped (Directory Read Error)"
	ReasonFileTypeError SkippedReason = "Skipped (File Type Error)"
)

// reasonFor maps a filter rejection to a SkippedReason
func reasonFor(r filter.Reason) SkippedReason {
	return SkippedReason(r)
}

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items. The walk is single-threaded, so no
// locking is needed.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker. A nil tracker drops it.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	if st == nil {
		return
	}
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	if st == nil {
		return nil
	}
	return st.items
}
