// Package summarize handles the monthly summary command
package summarize

import (
	"anjalsubedi/expense-tracker/cmd/common"
	"anjalsubedi/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Write the monthly summary CSV",
	Long: `Load the expenses file, total spending per month and category, flag
categories over their monthly budget and write the summary CSV file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		records, ok, err := common.Load(c, cmd.OutOrStdout())
		if err != nil || !ok {
			return err
		}
		_, err = common.Summarize(c, cmd.OutOrStdout(), records)
		return err
	},
}
