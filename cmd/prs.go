package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

var prsCmd = &cobra.Command{
	Use:   "prs <repo>",
	Short: "Lists the pull requests of a repository, optionally filtered by status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		statusStr, _ := cmd.Flags().GetString("status")
		filter, err := domain.ParseStatusFilter(statusStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid --status value. Use all, open, closed or merged. Error: %v\n", err)
			os.Exit(1)
		}

		aggregator, _ := newAggregator(0)
		prs, err := aggregator.PullRequests(ctx, args[0], filter)
		exitOnError(err, "list pull requests")
		printJSON(prs)
	},
}

func init() {
	rootCmd.AddCommand(prsCmd)
	prsCmd.Flags().String("status", string(domain.FilterAll), "Status filter: all, open, closed or merged")
}
