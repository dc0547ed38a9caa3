package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReportsRootFailureWithLoggingOff(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	var stderr bytes.Buffer

	code := run([]string{"--log-level", "none", "--noreport", missing}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "dir-tree: open root")
	assert.Contains(t, stderr.String(), missing)
}

func TestRunReportsConfigError(t *testing.T) {
	var stderr bytes.Buffer

	code := run([]string{"-L", "0", t.TempDir()}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "dir-tree: config: level")
}

func TestRunSuccess(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), nil, 0o644))
	var stderr bytes.Buffer

	code := run([]string{"--noreport", "--no-gitignore", root}, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}
