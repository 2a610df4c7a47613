// Package configcmd prints the effective configuration
package configcmd

import (
	"fmt"

	"anjalsubedi/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, config file, EXPENSES_* environment
variables and flags have been applied. The output is a valid config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := root.GetConfig()
		if cfg == nil {
			return fmt.Errorf("configuration not initialized")
		}

		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		if cfg.ConfigFile != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", cfg.ConfigFile)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
