// Package main provides the entry point for the bigmonctl CLI tool.
package main

import (
	"context"
	"os"

	"github.com/bigmonlabs/bigmonctl/cmd/bigmonctl/app"
)

// Version information populated by the release build via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Create app instance
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	// Execute with context
	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
