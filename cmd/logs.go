package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs <repo>",
	Short: "Shows the most recent log lines of a pull request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		number, _ := cmd.Flags().GetInt("pr")
		limit, _ := cmd.Flags().GetInt("limit")

		aggregator, _ := newAggregator(0)
		// A negative limit falls back to the configured log_limit.
		entries, err := aggregator.Logs(ctx, args[0], number, limit)
		exitOnError(err, "load logs")
		printJSON(entries)
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().Int("pr", 0, "Pull request number (required)")
	logsCmd.Flags().Int("limit", -1, "Maximum number of log lines (defaults to log_limit)")
	logsCmd.MarkFlagRequired("pr")
}
