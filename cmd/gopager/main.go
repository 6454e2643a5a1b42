// Package main is the entry point for the gopager CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kstenerud/gopager/internal/cli"
)

// Set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Ctrl-C reaches the pager as well, which handles it itself. Turning it
	// into context cancellation keeps this process alive until the pager
	// handle is closed and stdout restored.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, version, commit, date)
	stop()
	os.Exit(code)
}
