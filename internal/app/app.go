// Package app runs a dir-tree listing from a loaded configuration
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/bethropolis/dir-tree/internal/setup"
	"github.com/bethropolis/dir-tree/internal/summary"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
)

// App encapsulates the main application functionality
type App struct {
	cfg       *config.Config
	output    io.Writer
	errOutput io.Writer
	walkOpts  []walker.Option
}

// Option is a functional option for configuring the App
type Option func(*App)

// WithOutput sets where the tree is written
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.output = w
	}
}

// WithErrOutput sets where logs and skipped items are written
func WithErrOutput(w io.Writer) Option {
	return func(a *App) {
		a.errOutput = w
	}
}

// WithWalkerOptions appends options to the walker built for the run
func WithWalkerOptions(opts ...walker.Option) Option {
	return func(a *App) {
		a.walkOpts = append(a.walkOpts, opts...)
	}
}

// New creates a new App instance
func New(cfg *config.Config, opts ...Option) *App {
	a := &App{
		cfg:       cfg,
		output:    os.Stdout,
		errOutput: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run lists cfg with the default outputs
func Run(cfg *config.Config) error {
	return New(cfg).Run()
}

// Run lists every root in turn. A root that fails does not stop the others;
// the failures come back together as one error for the caller to report. A
// ConfigError is returned before anything is written.
func (a *App) Run() error {
	level, err := a.cfg.Level()
	if err != nil {
		return err
	}

	// Configure color globally
	color.NoColor = !a.cfg.UseColors
	log := logger.New(a.errOutput, level, a.cfg.UseColors)

	log.Debug("Roots: %v", a.cfg.Roots)
	log.Debug("Color output: %v", a.cfg.UseColors)
	if a.cfg.Compat {
		log.Debug("Compatibility mode enabled (matchdirs=%v)", a.cfg.MatchDirs)
	}

	w, tracker, err := setup.ConfigureWalker(a.cfg, log, a.walkOpts...)
	if err != nil {
		return err
	}

	p := printer.New(
		printer.WithOutput(a.output),
		printer.WithColors(a.cfg.UseColors),
		printer.WithFullPath(a.cfg.FullPath),
	)

	var stats walker.Stats
	var result *multierror.Error
	for _, root := range a.cfg.Roots {
		if err := a.listRoot(w, p, root, &stats); err != nil {
			log.Debug("Failed to list '%s', continuing: %v", root, err)
			result = multierror.Append(result, err)
		}
	}
	if result != nil {
		result.ErrorFormat = formatRootErrors
	}

	if !a.cfg.NoReport {
		if _, err := fmt.Fprintln(a.output); err != nil {
			return multierror.Append(result, fmt.Errorf("app: write failed: %w", err))
		}
		if err := summary.Report(a.output, stats, a.cfg.DirsOnly); err != nil {
			return multierror.Append(result, err)
		}
	}

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(log, tracker.Items(), a.errOutput)
	}

	log.Debug("Listed %d directories and %d files in %d lines", stats.Dirs, stats.Files, p.Lines())
	return result.ErrorOrNil()
}

// formatRootErrors keeps a single failure on one line
func formatRootErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d roots failed: %s", len(errs), strings.Join(msgs, "; "))
}

func (a *App) listRoot(w *walker.Walker, p *printer.Printer, root string, stats *walker.Stats) error {
	if err := p.PrintRoot(root); err != nil {
		return err
	}
	return w.Walk(root, p, stats)
}
