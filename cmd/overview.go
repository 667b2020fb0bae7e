package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview <repo>...",
	Short: "Summarizes several repositories at once",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		aggregator, logger := newAggregator(0)
		logger.Debug("Fetching repositories", "count", len(args))
		overview, err := aggregator.Overview(ctx, args)
		exitOnError(err, "build overview")
		printJSON(overview)
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
