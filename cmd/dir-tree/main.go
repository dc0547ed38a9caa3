package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/dir-tree/internal/app"
	"github.com/bethropolis/dir-tree/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command and returns the exit status. Every error is
// printed here, whatever the log level.
func run(args []string, stderr io.Writer) int {
	cmd := config.NewCommand(app.Run)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "dir-tree: %v\n", err)
		return 1
	}
	return 0
}
