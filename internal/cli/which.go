package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kstenerud/gopager/internal/fdio"
	"github.com/kstenerud/gopager/internal/pager"
	"github.com/spf13/cobra"
)

// whichResult describes the pager that would be used.
type whichResult struct {
	Command   string   `json:"command"`
	Argv      []string `json:"argv"`
	Terminal  bool     `json:"terminal"`
	WouldPage bool     `json:"would_page"`
}

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "Show which pager would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := resolvePager(cmd)
			if err != nil {
				return err
			}

			if jsonEnabled(cmd) {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if res.Command == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "none")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Argv, " "))
			return err
		},
	}
}

func resolvePager(cmd *cobra.Command) (whichResult, error) {
	res := whichResult{Argv: []string{}}
	if noPager, _ := cmd.Flags().GetBool("no-pager"); noPager {
		return res, nil
	}
	cfg, err := pagerConfig(cmd)
	if err != nil {
		return res, err
	}

	line, ok := pager.New(cfg, slog.Default()).Resolve()
	if !ok {
		return res, nil
	}
	argv, err := pager.Tokenize(line)
	if err != nil {
		return res, err
	}

	res.Command = line
	res.Argv = argv
	res.Terminal = fdio.OS().IsTerminal(fdio.Stdout)
	res.WouldPage = res.Terminal || cfg.NoSkip
	return res, nil
}
