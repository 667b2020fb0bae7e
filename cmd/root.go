// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/pulsecheck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pulsecheck",
	Short: "A CLI tool to summarize pull-request activity of a repository.",
	Long: `pulsecheck fetches the pull requests of a repository from a data source
(a pulsecheck API, JSON files or the built-in sample generator) and prints
dashboard views as JSON: status rollups, filtered PR lists, recent logs and
chart series.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringP("source", "s", config.SourceSample, "Data source: sample, file or http")
	flags.String("base-url", "http://localhost:3000", "Base URL of the pulsecheck API (http source)")
	flags.String("data-dir", "data", "Directory holding <repo>.json documents (file source)")
	flags.Uint64("seed", 1, "Seed of the sample generator (sample source)")
	flags.Duration("http-timeout", 0, "Timeout of a single API request (http source)")
	config.Init(rootCmd)
}
