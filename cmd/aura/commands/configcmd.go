// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/gossamer-aura/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Export and validate configuration files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export [file]",
		Short: "Write the configuration resulting from flags, environment and config file as TOML",
		Long: `Write the effective configuration as TOML, to the given file or to
config.toml in the base path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseConfig(cmd, v)
			if err != nil {
				return err
			}

			fp := filepath.Join(cfg.Base.BasePath, config.DefaultConfigFileName)
			if len(args) == 1 {
				fp = args[0]
			}

			if err := config.ExportTOML(cfg, fp); err != nil {
				return fmt.Errorf("failed to export config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", fp)
			return nil
		},
	}, &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a TOML configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadTOML(args[0])
			if err != nil {
				return err
			}
			if err := cfg.ValidateBasic(); err != nil {
				return fmt.Errorf("invalid config %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	})

	return cmd
}
