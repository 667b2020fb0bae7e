package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <repo>",
	Short: "Counts the pull requests of a repository by status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		withPRs, _ := cmd.Flags().GetBool("with-prs")

		aggregator, _ := newAggregator(0)
		summary, err := aggregator.Summary(ctx, args[0])
		exitOnError(err, "summarize repository")
		if !withPRs {
			summary.PRs = nil
		}
		printJSON(summary)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().Bool("with-prs", false, "Include the pull requests in the output")
}
