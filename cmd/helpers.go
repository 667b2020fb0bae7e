package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/naka-gawa/pulsecheck/internal/config"
	"github.com/naka-gawa/pulsecheck/internal/gateway"
	"github.com/naka-gawa/pulsecheck/internal/logging"
	"github.com/naka-gawa/pulsecheck/internal/usecase"
)

// newAggregator builds the logger, the configured data source and the use case.
func newAggregator(window int) (*usecase.Aggregator, logging.Logger) {
	logger, err := logging.NewZap(config.LogLevel(), config.Verbose())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	fetcher, err := newFetcher(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data source: %v\n", err)
		os.Exit(1)
	}
	if window <= 0 {
		window = config.SeriesWindow()
	}
	series := usecase.NewSeriesBuilder(window)
	return usecase.NewAggregator(fetcher, series, config.LogLimit(), logger), logger
}

func newFetcher(logger logging.Logger) (gateway.Fetcher, error) {
	switch src := config.Source(); src {
	case config.SourceSample:
		return gateway.NewSampleGateway(config.Seed(), nil), nil
	case config.SourceFile:
		return gateway.NewFileGateway(config.DataDir(), logger), nil
	case config.SourceHTTP:
		return gateway.NewHTTPGateway(config.BaseURL(), config.HTTPTimeout(), logger)
	default:
		return nil, fmt.Errorf("unknown source %q", src)
	}
}

// exitOnError prints err and terminates. Upstream failures are printed as
// the upstream message alone.
func exitOnError(err error, action string) {
	if err == nil {
		return
	}
	var upstream *gateway.UpstreamError
	if errors.As(err, &upstream) {
		fmt.Fprintln(os.Stderr, upstream.Error())
	} else {
		fmt.Fprintf(os.Stderr, "Failed to %s: %v\n", action, err)
	}
	os.Exit(1)
}

// printJSON marshals v into a pretty-printed JSON string on standard output.
func printJSON(v any) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal results to JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}
