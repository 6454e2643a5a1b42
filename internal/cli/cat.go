package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat [file...]",
		Short: "Page files, or standard input",
		Long: `Copy files to standard output through the pager.
With no file, or when file is -, read standard input.`,
		Args: cobra.ArbitraryArgs,
		RunE: runCat,
	}
	cmd.Flags().Bool("strip-ansi", false, "Remove ANSI escape sequences")
	return cmd
}

func runCat(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	strip, _ := cmd.Flags().GetBool("strip-ansi")

	return withPager(cmd, func(w io.Writer) error {
		for _, name := range args {
			if err := catFile(w, cmd.InOrStdin(), name, strip); err != nil {
				return err
			}
		}
		return nil
	})
}

func catFile(w io.Writer, stdin io.Reader, name string, strip bool) error {
	src := stdin
	if name != "-" {
		f, err := os.Open(name) //nolint:gosec // G304: user-named file
		if err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close() //nolint:errcheck // read-only
		src = f
	}

	if strip {
		return stripANSI(w, src)
	}
	_, err := io.Copy(w, src)
	return err
}
