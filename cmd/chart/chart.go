// Package chart handles the spending chart command
package chart

import (
	"anjalsubedi/expense-tracker/cmd/common"
	"anjalsubedi/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the chart command
var Cmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the monthly spending chart",
	Long: `Load the expenses file and render a grouped bar chart of spending per
month and category. The image format follows the plot file extension.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		records, ok, err := common.Load(c, cmd.OutOrStdout())
		if err != nil || !ok {
			return err
		}
		return common.Chart(c, cmd.OutOrStdout(), c.GetAggregator().Aggregate(records))
	},
}
