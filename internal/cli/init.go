package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/phonebook/internal/config"
	"github.com/mesh-intelligence/phonebook/internal/paths"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a default config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := config.WriteDefault(a.configDir)
			if err != nil {
				return sysErr("init: %w", err)
			}

			path := paths.ConfigFile(a.configDir)
			a.logger.Debug("init finished", zap.String("path", path), zap.Bool("written", written))
			if written {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at", path)
			}
			return nil
		},
	}
}
