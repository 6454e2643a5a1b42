package cli

// ABOUTME: Builds the pager for a command from flags and config.yaml, and
// ABOUTME: wraps command output in it.

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/kstenerud/gopager/internal/config"
	"github.com/kstenerud/gopager/internal/pager"
	"github.com/spf13/cobra"
)

// pagerConfig merges the pager flags with config.yaml. Flags win.
func pagerConfig(cmd *cobra.Command) (pager.Config, error) {
	var cfg pager.Config
	cfg.Override, _ = cmd.Flags().GetString("pager")
	cfg.EnvVar, _ = cmd.Flags().GetString("pager-env")
	cfg.NoSkip, _ = cmd.Flags().GetBool("force")
	cfg.Env, _ = cmd.Flags().GetStringToString("env")

	file, err := config.Load()
	if err != nil {
		return cfg, err
	}
	file.Apply(&cfg)
	return cfg, nil
}

// newPager returns the pager for cmd, or nil when --no-pager is set.
func newPager(cmd *cobra.Command) (*pager.Pager, error) {
	if noPager, _ := cmd.Flags().GetBool("no-pager"); noPager {
		return nil, nil
	}
	cfg, err := pagerConfig(cmd)
	if err != nil {
		return nil, err
	}
	return pager.New(cfg, slog.Default()), nil
}

// withPager calls fn with a writer on the command's output, paged when
// that output is the process's stdout.
func withPager(cmd *cobra.Command, fn func(w io.Writer) error) error {
	out := cmd.OutOrStdout()
	if out != os.Stdout {
		return fn(out)
	}
	p, err := newPager(cmd)
	if err != nil {
		return err
	}
	if p == nil {
		return fn(out)
	}
	return p.Run(fn)
}

// startPager redirects stdout into the pager for commands whose output
// comes from child processes. The returned handle is never nil.
func startPager(cmd *cobra.Command) (*pager.Handle, error) {
	p, err := newPager(cmd)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &pager.Handle{}, nil
	}

	h, err := p.Setup()
	if err != nil {
		var cfgErr *pager.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		slog.Warn("pager unavailable, writing directly", "error", err)
	}
	return h, nil
}
