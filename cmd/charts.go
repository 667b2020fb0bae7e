package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts <repo>",
	Short: "Prints the chart series of a repository",
	Long:  `Prints build time and coverage per PR, the error trend, the status and deployment distributions and build metric statistics.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		window, _ := cmd.Flags().GetInt("window")

		aggregator, _ := newAggregator(window)
		charts, err := aggregator.Charts(ctx, args[0])
		exitOnError(err, "build charts")
		printJSON(charts)
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().Int("window", 0, "Number of PRs in the per-PR series (defaults to series_window)")
}
