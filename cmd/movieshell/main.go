package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/langel/movieshell/internal/infrastructure/cli"
	"github.com/langel/movieshell/internal/infrastructure/config"
)

func main() {
	ctx := context.Background()
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("MOVIESHELL_DEBUG"), "1") || strings.EqualFold(os.Getenv("MOVIESHELL_DEBUG"), "true")
}
