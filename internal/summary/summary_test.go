package summary

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		stats    walker.Stats
		dirsOnly bool
		want     string
	}{
		{"empty", walker.Stats{}, false, "0 directories, 0 files\n"},
		{"singular", walker.Stats{Dirs: 1, Files: 1}, false, "1 directory, 1 file\n"},
		{"plural", walker.Stats{Dirs: 4, Files: 12}, false, "4 directories, 12 files\n"},
		{"dirs only", walker.Stats{Dirs: 3, Files: 9}, true, "3 directories\n"},
		{"dirs only singular", walker.Stats{Dirs: 1}, true, "1 directory\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Report(&buf, tt.stats, tt.dirsOnly))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type captureLogger struct {
	infos []string
}

func (c *captureLogger) Debug(string, ...interface{}) {}
func (c *captureLogger) Warn(string, ...interface{})  {}
func (c *captureLogger) Error(string, ...interface{}) {}
func (c *captureLogger) Info(format string, args ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, args...))
}

func TestDisplaySkippedItems(t *testing.T) {
	items := []walker.SkippedItem{
		{Path: "/r/z.log", Reason: "Ignored (Gitignore Rule)"},
		{Path: "/r/.git", Reason: "Ignored (Hidden Rule)", IsDir: true},
	}
	var buf bytes.Buffer
	log := &captureLogger{}

	DisplaySkippedItems(log, items, &buf)

	assert.Equal(t,
		"Skipped DIR : /r/.git [Ignored (Hidden Rule)]\n"+
			"Skipped FILE: /r/z.log [Ignored (Gitignore Rule)]\n",
		buf.String())
	assert.Equal(t, []string{"--- Skipped Items (2) ---", "--- End Skipped Items ---"}, log.infos)
	// caller's slice keeps its order
	assert.Equal(t, "/r/z.log", items[0].Path)
}

func TestDisplayNoSkippedItems(t *testing.T) {
	var buf bytes.Buffer
	log := &captureLogger{}

	DisplaySkippedItems(log, nil, &buf)

	assert.Empty(t, buf.String())
	assert.Equal(t, []string{"--- Skipped Items (0) ---", "No items were skipped."}, log.infos)
}
