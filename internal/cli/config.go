package cli

// ABOUTME: CLI commands for reading and writing gopager config.yaml settings.

import (
	"fmt"

	"github.com/kstenerud/gopager/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get or set configuration values",
	}

	cmd.AddCommand(
		newConfigGetCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print configuration value(s)",
		Long: `Print configuration values from ~/.gopager/config.yaml.

Without arguments, prints the entire config file.
With a dotted key (e.g., env.LESS), prints just that value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				data, err := config.ReadRaw()
				if err != nil || data == nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			value, found, err := config.GetValue(args[0])
			if err != nil {
				return err
			}
			if !found {
				return NewUsageError("config key %q is not set", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.gopager/config.yaml.

Keys: pager, env_var, force, env.<NAME>.
Creates the config file if it doesn't exist.
Preserves comments and formatting.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return config.UpdateFields(map[string]string{
				args[0]: args[1],
			})
		},
	}
}
