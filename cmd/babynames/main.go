package main

import (
	"context"
	"os"

	"babynames/internal/cli"
)

var (
	// Version information, set at build time.
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	root := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	root.Version = version + " (built " + buildTime + ")"

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
