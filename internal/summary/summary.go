// Package summary handles display of the closing report and skipped items
package summary

import (
	"fmt"
	"io"
	"sort"

	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
)

// Report writes the count line that closes a listing, e.g.
// "3 directories, 1 file". With dirsOnly the file count is left out.
func Report(w io.Writer, stats walker.Stats, dirsOnly bool) error {
	line := plural(stats.Dirs, "directory", "directories")
	if !dirsOnly {
		line += ", " + plural(stats.Files, "file", "files")
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("summary: write failed: %w", err)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger utils.Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
) {
	logger = utils.OrNoop(logger)

	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
		return
	}

	// Sort a copy for consistent output
	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
	}
	logger.Info("--- End Skipped Items ---")
}
