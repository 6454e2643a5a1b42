package cli

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a command with its output paged",
		Long: `Run a command whose standard output goes through the pager.
Standard error and standard input are passed through unchanged.
gopager exits with the command's exit status.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return NewUsageError("command is required")
			}

			h, err := startPager(cmd)
			if err != nil {
				return err
			}
			defer h.Close() //nolint:errcheck // closed explicitly below

			slog.Debug("run command", "cmd", args, "paged", h.Active())

			c := exec.CommandContext(cmd.Context(), args[0], args[1:]...) //nolint:gosec // G204: user-supplied command is the point
			c.Stdin = os.Stdin
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			runErr := c.Run()

			// Wait for the user to finish with the pager before reporting.
			if err := h.Close(); err != nil {
				return err
			}

			if runErr != nil {
				var exitErr *exec.ExitError
				if errors.As(runErr, &exitErr) && exitErr.ExitCode() > 0 {
					return &childExitError{code: exitErr.ExitCode()}
				}
				return runErr
			}
			return nil
		},
	}
}
