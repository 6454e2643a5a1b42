package cli

// ABOUTME: slog setup driven by the -v/-q persistent flags.

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// logLevel maps the -v and -q counts to a slog level. Quiet wins.
func logLevel(verbose, quiet int) slog.Level {
	switch {
	case quiet >= 2:
		return slog.LevelError
	case quiet == 1:
		return slog.LevelWarn
	case verbose >= 1:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setupLogging installs the default logger on the command's stderr.
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetCount("verbose")
	quiet, _ := cmd.Flags().GetCount("quiet")
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), logLevel(verbose, quiet)))
}
