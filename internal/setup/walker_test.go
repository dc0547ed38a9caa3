package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/entry"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"lib", "target/debug"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	files := map[string]string{
		".gitignore":     "target/\n",
		"Cargo.toml":     "",
		"README.md":      "",
		"lib/main.rs":    "",
		"target/debug/x": "",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}
	return root
}

func names(t *testing.T, w *walker.Walker, root string) []string {
	t.Helper()
	var out []string
	var stats walker.Stats
	err := w.Walk(root, walker.VisitorFunc(func(e entry.Entry, depth int, _ bool) error {
		out = append(out, e.Name())
		return nil
	}), &stats)
	require.NoError(t, err)
	return out
}

func configure(t *testing.T, cfg *config.Config) (*walker.Walker, *walker.SkippedTracker) {
	t.Helper()
	w, tracker, err := ConfigureWalker(cfg, nil,
		walker.WithIgnoreOptions(ignore.WithGlobalPatterns()))
	require.NoError(t, err)
	return w, tracker
}

func TestConfigureDefaults(t *testing.T) {
	root := fixture(t)
	w, tracker := configure(t, &config.Config{})

	assert.Nil(t, tracker)
	assert.Equal(t, []string{"Cargo.toml", "README.md", "lib", "main.rs"}, names(t, w, root))
}

func TestConfigurePatterns(t *testing.T) {
	root := fixture(t)
	w, _ := configure(t, &config.Config{
		Include:    []string{"*.RS|*.toml"},
		IgnoreCase: true,
		Compat:     true,
	})

	// compat mode: ignore files are off, directories are never include-rejected
	assert.Equal(t, []string{"Cargo.toml", "lib", "main.rs", "target", "debug"}, names(t, w, root))
}

func TestConfigureOrderAndDepth(t *testing.T) {
	root := fixture(t)
	w, _ := configure(t, &config.Config{
		DirsFirst:  true,
		Reverse:    true,
		MaxDepth:   1,
		ShowHidden: true,
	})

	assert.Equal(t, []string{"README.md", "Cargo.toml", ".gitignore", "lib"}, names(t, w, root))
}

func TestConfigureSkipped(t *testing.T) {
	root := fixture(t)
	w, tracker := configure(t, &config.Config{ShowSkipped: true, Exclude: []string{"README*"}})
	require.NotNil(t, tracker)

	names(t, w, root)

	reasons := map[string]walker.SkippedReason{}
	for _, item := range tracker.Items() {
		reasons[filepath.Base(item.Path)] = item.Reason
	}
	assert.Equal(t, walker.SkippedReason("Ignored (Hidden Rule)"), reasons[".gitignore"])
	assert.Equal(t, walker.SkippedReason("Filtered (Exclude Pattern Match)"), reasons["README.md"])
	assert.Equal(t, walker.SkippedReason("Ignored (Gitignore Rule)"), reasons["target"])
}

func TestConfigureIgnoreFile(t *testing.T) {
	root := fixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".treeignore"), []byte("README.md\n"), 0o644))

	w, _ := configure(t, &config.Config{IgnoreFile: ".treeignore"})

	// .gitignore no longer applies, .treeignore does
	assert.Equal(t, []string{"Cargo.toml", "lib", "main.rs", "target", "debug", "x"}, names(t, w, root))
}

func TestConfigureBadPattern(t *testing.T) {
	_, _, err := ConfigureWalker(&config.Config{Include: []string{"*.[rs"}}, nil)
	require.Error(t, err)
	assert.True(t, utils.IsConfigError(err))

	_, _, err = ConfigureWalker(&config.Config{Exclude: []string{"ok|[bad"}}, nil)
	require.Error(t, err)
	assert.True(t, utils.IsConfigError(err))
}
