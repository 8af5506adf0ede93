package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roster-reconciler/internal/config"
)

func (a *app) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with configuration files",
	}

	cmd.AddCommand(a.newConfigInitCommand())

	return cmd
}

func (a *app) newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the effective configuration as YAML",
		Long: `init writes the configuration in effect (defaults, or the file given
with --config, plus --log-level) to PATH, or to stdout when PATH is omitted.
The result is a starting point for tuning thresholds and weights.`,
		Example: `  reconcile config init reconcile.yaml
  reconcile --config old.yaml config init`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				data, err := config.Marshal(a.cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}

				_, err = a.out.Write(data)
				return err
			}

			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
				}
			}

			if err := config.WriteFile(a.cfg, path); err != nil {
				return err
			}

			a.log.Info().Str("path", path).Msg("configuration written")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
