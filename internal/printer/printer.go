// Package printer renders the tree listing
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/dir-tree/internal/entry"
	"github.com/fatih/color"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	pipe       = "│   "
	blank      = "    "
)

// Printer writes one line per visited entry, drawing the branches of the tree
// in front of it. It implements walker.Visitor.
type Printer struct {
	output    io.Writer
	useColors bool
	fullPath  bool

	dirColor  *color.Color
	linkColor *color.Color

	root  string
	last  []bool   // whether the ancestor at each depth was the last entry
	names []string // entry names along the current branch
	lines int
}

// Option is a functional option for configuring the Printer
type Option func(*Printer)

// WithOutput sets the output destination
func WithOutput(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.output = w
		}
	}
}

// WithColors enables or disables colored entry names
func WithColors(enabled bool) Option {
	return func(p *Printer) {
		p.useColors = enabled
	}
}

// WithFullPath prints every entry with the path leading to it from the root
func WithFullPath(enabled bool) Option {
	return func(p *Printer) {
		p.fullPath = enabled
	}
}

// New creates a Printer writing to stdout without colors
func New(opts ...Option) *Printer {
	p := &Printer{output: os.Stdout}
	for _, opt := range opts {
		opt(p)
	}

	// set per color so the global color.NoColor does not override the option
	p.dirColor = color.New(color.FgBlue, color.Bold)
	p.linkColor = color.New(color.FgCyan, color.Bold)
	if p.useColors {
		p.dirColor.EnableColor()
		p.linkColor.EnableColor()
	} else {
		p.dirColor.DisableColor()
		p.linkColor.DisableColor()
	}
	return p
}

// PrintRoot starts the listing of a new root
func (p *Printer) PrintRoot(root string) error {
	p.root = root
	p.last = p.last[:0]
	p.names = p.names[:0]
	return p.writeLine(p.dirColor.Sprint(root))
}

// Visit prints e at the given depth. Depth 1 entries hang directly off the
// root line.
func (p *Printer) Visit(e entry.Entry, depth int, isLast bool) error {
	if depth < 1 {
		return fmt.Errorf("printer: invalid depth %d for %q", depth, e.Name())
	}

	p.last = append(p.last[:depth-1], isLast)
	p.names = append(p.names[:depth-1], e.Name())

	var b strings.Builder
	for _, ancestorLast := range p.last[:depth-1] {
		if ancestorLast {
			b.WriteString(blank)
		} else {
			b.WriteString(pipe)
		}
	}
	if isLast {
		b.WriteString(branchLast)
	} else {
		b.WriteString(branchMid)
	}
	b.WriteString(p.label(e))

	return p.writeLine(b.String())
}

func (p *Printer) label(e entry.Entry) string {
	name := e.Name()
	if p.fullPath {
		name = p.root
		for _, n := range p.names {
			name = entry.Join(name, n)
		}
	}

	switch e.Type() {
	case entry.Dir:
		return p.dirColor.Sprint(name)
	case entry.Symlink:
		return p.linkColor.Sprint(name)
	default:
		return name
	}
}

func (p *Printer) writeLine(s string) error {
	if _, err := fmt.Fprintln(p.output, s); err != nil {
		return fmt.Errorf("printer: write failed: %w", err)
	}
	p.lines++
	return nil
}

// Lines returns the number of lines written so far
func (p *Printer) Lines() int {
	return p.lines
}
