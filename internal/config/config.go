// Package config builds the dir-tree command line and turns it into a Config
package config

import (
	"os"
	"strings"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is reported by --version
const Version = "1.0.0"

// EnvPrefix prefixes the environment variables that override flags, e.g.
// DIR_TREE_ALL=true for -a.
const EnvPrefix = "DIR_TREE"

// Config holds all application configuration settings
type Config struct {
	Roots []string

	// Filtering settings
	ShowHidden  bool
	DirsOnly    bool
	MaxDepth    int // 0 means unlimited
	Include     []string
	Exclude     []string
	IgnoreCase  bool
	MatchDirs   bool
	Compat      bool
	GitIgnore   bool
	NoGitIgnore bool
	IgnoreFile  string

	// Output settings
	FullPath    bool
	DirsFirst   bool
	Reverse     bool
	NoReport    bool
	ShowSkipped bool
	NoColor     bool
	UseColors   bool

	// Logging settings
	Verbose  bool
	LogLevel string
}

// stdoutIsTerminal is replaced in tests
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RespectIgnore reports whether .gitignore files are honored. They are on by
// default, except in compatibility mode where --gitignore turns them on.
func (c *Config) RespectIgnore() bool {
	if c.Compat {
		return c.GitIgnore
	}
	return !c.NoGitIgnore
}

// Level returns the parsed log level
func (c *Config) Level() (logger.LogLevel, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return level, &utils.ConfigError{Field: "log-level", Err: err}
	}
	return level, nil
}

// Validate rejects flag combinations that make no sense
func (c *Config) Validate() error {
	if c.Compat && c.NoGitIgnore {
		return utils.NewConfigError("no-gitignore", "cannot be combined with --compat")
	}
	if c.GitIgnore && !c.Compat {
		return utils.NewConfigError("gitignore", "only valid with --compat")
	}
	if c.IgnoreFile != "" && strings.ContainsRune(c.IgnoreFile, os.PathSeparator) {
		return utils.NewConfigError("ignore-file", "must be a file name, got %q", c.IgnoreFile)
	}
	if c.MaxDepth < 0 {
		return utils.NewConfigError("level", "must be at least 1, got %d", c.MaxDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// NewCommand creates the root command. run receives the loaded Config once
// flags and environment overrides have been validated.
func NewCommand(run func(*Config) error) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "dir-tree [flags] [directory...]",
		Short: "List directory contents as a tree, honoring .gitignore files",
		Long: `dir-tree prints the contents of each given directory (default ".") as an
indented tree, followed by a count of the directories and files shown.
Rules from .gitignore files along the way, and from the global git excludes
file, are honored unless disabled.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Load(v, args)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolP("all", "a", false, "Show hidden files and directories")
	flags.BoolP("dirs-only", "d", false, "List directories only")
	flags.IntP("level", "L", 0, "Descend at most this many directories deep (at least 1)")
	flags.StringArrayP("pattern", "P", nil, "List only files matching the glob; '|' separates alternatives")
	flags.StringArrayP("ignore", "I", nil, "Do not list entries matching the glob; '|' separates alternatives")
	flags.Bool("ignore-case", false, "Match -P and -I patterns case-insensitively")
	flags.Bool("matchdirs", false, "Apply -P patterns to directory names too (with --compat)")
	flags.BoolP("full-path", "f", false, "Print the full path prefix for each entry")
	flags.Bool("dirsfirst", false, "List directories before files")
	flags.BoolP("reverse", "r", false, "Reverse the sort order")
	flags.Bool("compat", false, "Behave like tree: .gitignore files are off unless --gitignore is given")
	flags.Bool("gitignore", false, "Honor .gitignore files in compatibility mode")
	flags.Bool("no-gitignore", false, "Do not honor .gitignore files")
	flags.String("ignore-file", ignore.DefaultFileName, "Name of the per-directory rule file")
	flags.Bool("noreport", false, "Omit the directory and file count at the end")
	flags.Bool("show-skipped", false, "List skipped entries and reasons on stderr at the end")
	flags.Bool("no-color", false, "Disable color output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-level", "warn", "Set the logging level (debug, info, warn, error, none)")

	// snake_case keys so env vars read DIR_TREE_NO_GITIGNORE and friends
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &utils.ConfigError{Field: "flags", Err: err}
	})

	return cmd
}

// Load reads the configuration from v, which must have the command's flags
// bound, and validates it.
func Load(v *viper.Viper, args []string) (*Config, error) {
	c := &Config{
		Roots:       args,
		ShowHidden:  v.GetBool("all"),
		DirsOnly:    v.GetBool("dirs_only"),
		Include:     v.GetStringSlice("pattern"),
		Exclude:     v.GetStringSlice("ignore"),
		IgnoreCase:  v.GetBool("ignore_case"),
		MatchDirs:   v.GetBool("matchdirs"),
		Compat:      v.GetBool("compat"),
		GitIgnore:   v.GetBool("gitignore"),
		NoGitIgnore: v.GetBool("no_gitignore"),
		IgnoreFile:  v.GetString("ignore_file"),
		FullPath:    v.GetBool("full_path"),
		DirsFirst:   v.GetBool("dirsfirst"),
		Reverse:     v.GetBool("reverse"),
		NoReport:    v.GetBool("noreport"),
		ShowSkipped: v.GetBool("show_skipped"),
		NoColor:     v.GetBool("no_color"),
		Verbose:     v.GetBool("verbose"),
		LogLevel:    v.GetString("log_level"),
	}

	if len(c.Roots) == 0 {
		c.Roots = []string{"."}
	}

	// -L 0 is rejected rather than read as unlimited
	if v.IsSet("level") {
		c.MaxDepth = v.GetInt("level")
		if c.MaxDepth < 1 {
			return nil, utils.NewConfigError("level", "must be at least 1, got %d", c.MaxDepth)
		}
	}

	if c.Verbose && !v.IsSet("log_level") {
		c.LogLevel = "debug"
	}

	c.UseColors = !c.NoColor && stdoutIsTerminal()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
