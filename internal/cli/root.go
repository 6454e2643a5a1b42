// Package cli defines the Cobra command tree for the gopager CLI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kstenerud/gopager/internal/pager"
	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute(ctx context.Context, version, commit, date string) int {
	rootCmd := newRootCmd(version, commit, date)
	return exitCode(rootCmd.ExecuteContext(ctx), os.Stderr)
}

// exitCode reports err on stderr and maps it to a process exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	// The child already reported its own failure.
	var childErr *childExitError
	if errors.As(err, &childErr) {
		return childErr.code
	}

	fmt.Fprintf(stderr, "gopager: %s\n", err) //nolint:errcheck // best-effort stderr write

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}

	var configErr *pager.ConfigError
	if errors.As(err, &configErr) {
		return 3
	}

	return 1
}

// newRootCmd creates the root Cobra command with all subcommands registered.
func newRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gopager",
		Short: "Page output through less, more, or $PAGER",
		Long: `Send output through an interactive pager the way git does.
The pager is chosen from --pager, then $PAGER, then the config file,
then "more" if it is installed. Nothing is paged when stdout is not a
terminal (unless --force) or when NOPAGER is set.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountP("verbose", "v", "Increase output verbosity (-v for debug)")
	flags.CountP("quiet", "q", "Suppress non-essential output (-q for warn, -qq for error only)")
	flags.Bool("json", false, "Output as JSON")
	flags.String("pager", "", "Pager command, overriding $PAGER and the config file")
	flags.String("pager-env", "", "Environment variable naming the pager (default PAGER)")
	flags.StringToString("env", nil, "Extra KEY=VALUE environment for the pager only (repeatable)")
	flags.Bool("no-pager", false, "Do not page output")
	flags.Bool("force", false, "Page even when stdout is not a terminal")

	registerCommands(rootCmd, version, commit, date)

	return rootCmd
}
