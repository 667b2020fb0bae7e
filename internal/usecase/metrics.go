package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

// MetricStats summarizes build time, coverage and error counts across prs.
// An empty collection yields a zero summary.
func MetricStats(prs []domain.PullRequest) domain.MetricSummary {
	if len(prs) == 0 {
		return domain.MetricSummary{}
	}

	buildTimes := make(stats.Float64Data, 0, len(prs))
	coverage := make(stats.Float64Data, 0, len(prs))
	errs := make(stats.Float64Data, 0, len(prs))
	summary := domain.MetricSummary{SampleSize: len(prs)}
	for _, pr := range prs {
		buildTimes = append(buildTimes, pr.Metrics.BuildTime)
		coverage = append(coverage, pr.Metrics.TestCoverage)
		errs = append(errs, float64(pr.Metrics.Errors))
		summary.TotalWarnings += pr.Metrics.Warnings
	}

	// The inputs are non-empty, so the stats calls cannot fail.
	summary.MeanBuildTime, _ = buildTimes.Mean()
	summary.MedianBuildTime, _ = buildTimes.Median()
	summary.P90BuildTime, _ = buildTimes.Percentile(90)
	summary.MeanTestCoverage, _ = coverage.Mean()
	summary.MedianTestCoverage, _ = coverage.Median()
	summary.MeanErrors, _ = errs.Mean()
	return summary
}
