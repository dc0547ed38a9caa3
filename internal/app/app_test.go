package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deeper"), 0o755))
	for name, content := range map[string]string{
		".gitignore":      "*.tmp\n",
		"a.txt":           "",
		"scratch.tmp":     "",
		"sub/b.txt":       "",
		"sub/deeper/c.go": "",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}
	return root
}

func run(t *testing.T, cfg *config.Config) (string, string, error) {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	var out, errOut bytes.Buffer
	a := New(cfg,
		WithOutput(&out),
		WithErrOutput(&errOut),
		WithWalkerOptions(walker.WithIgnoreOptions(ignore.WithGlobalPatterns())),
	)
	err := a.Run()
	return out.String(), errOut.String(), err
}

func TestRunSingleRoot(t *testing.T) {
	root := fixture(t)

	out, errOut, err := run(t, &config.Config{Roots: []string{root}})
	require.NoError(t, err)
	assert.Empty(t, errOut)

	want := strings.Join([]string{
		root,
		"├── a.txt",
		"└── sub",
		"    ├── b.txt",
		"    └── deeper",
		"        └── c.go",
		"",
		"3 directories, 3 files",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRunOptions(t *testing.T) {
	root := fixture(t)

	t.Run("dirs only", func(t *testing.T) {
		out, _, err := run(t, &config.Config{Roots: []string{root}, DirsOnly: true})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, "\n3 directories\n"), out)
		assert.NotContains(t, out, "a.txt")
	})

	t.Run("noreport", func(t *testing.T) {
		out, _, err := run(t, &config.Config{Roots: []string{root}, NoReport: true})
		require.NoError(t, err)
		assert.NotContains(t, out, "directories")
		assert.True(t, strings.HasSuffix(out, "c.go\n"), out)
	})

	t.Run("no gitignore", func(t *testing.T) {
		out, _, err := run(t, &config.Config{Roots: []string{root}, NoGitIgnore: true})
		require.NoError(t, err)
		assert.Contains(t, out, "scratch.tmp")
		assert.Contains(t, out, "3 directories, 4 files")
	})

	t.Run("max depth", func(t *testing.T) {
		out, _, err := run(t, &config.Config{Roots: []string{root}, MaxDepth: 1})
		require.NoError(t, err)
		assert.NotContains(t, out, "b.txt")
		assert.Contains(t, out, "2 directories, 1 file\n")
	})

	t.Run("show skipped", func(t *testing.T) {
		_, errOut, err := run(t, &config.Config{Roots: []string{root}, ShowSkipped: true})
		require.NoError(t, err)
		assert.Contains(t, errOut, "scratch.tmp [Ignored (Gitignore Rule)]")
		assert.Contains(t, errOut, ".gitignore [Ignored (Hidden Rule)]")
	})
}

func TestRunMultipleRoots(t *testing.T) {
	one := fixture(t)
	two := t.TempDir()
	missing := filepath.Join(t.TempDir(), "nope")

	out, errOut, err := run(t, &config.Config{Roots: []string{one, missing, two}})
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 1)
	assert.True(t, utils.IsIOError(err))

	// the failing root is still printed and the others still listed
	assert.Contains(t, out, missing+"\n")
	assert.Contains(t, out, two+"\n")
	// the empty root adds nothing to the counts
	assert.True(t, strings.HasSuffix(out, "\n3 directories, 3 files\n"), out)
	// reported by the caller, not logged at the default level
	assert.Contains(t, err.Error(), missing)
	assert.NotContains(t, err.Error(), "roots failed")
	assert.Empty(t, errOut)
}

func TestRunLogsRootFailureAtDebug(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, errOut, err := run(t, &config.Config{Roots: []string{missing}, LogLevel: "debug"})
	require.Error(t, err)
	assert.Contains(t, errOut, "Failed to list '"+missing+"'")
}

func TestRunSeveralRootFailures(t *testing.T) {
	a := filepath.Join(t.TempDir(), "a")
	b := filepath.Join(t.TempDir(), "b")

	out, _, err := run(t, &config.Config{Roots: []string{a, b}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 roots failed: ")
	assert.Contains(t, err.Error(), a)
	assert.Contains(t, err.Error(), b)
	assert.True(t, strings.HasSuffix(out, "\n0 directories, 0 files\n"), out)
}

func TestRunConfigError(t *testing.T) {
	out, errOut, err := run(t, &config.Config{Roots: []string{t.TempDir()}, Include: []string{"[oops"}})
	require.Error(t, err)
	assert.True(t, utils.IsConfigError(err))
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestRunIsRepeatable(t *testing.T) {
	root := fixture(t)
	cfg := &config.Config{Roots: []string{root}, ShowHidden: true}

	first, _, err := run(t, cfg)
	require.NoError(t, err)
	second, _, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
