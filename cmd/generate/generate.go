// Package generate handles the sample data command
package generate

import (
	"anjalsubedi/expense-tracker/cmd/common"
	"anjalsubedi/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Create an expenses file with sample data",
	Long: `Create the expenses CSV file filled with random sample expenses.
An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.Generate(root.GetContainer(), cmd.OutOrStdout())
	},
}
