package usecase

import (
	"fmt"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

// DefaultSeriesWindow is the number of PRs plotted in the per-PR charts.
const DefaultSeriesWindow = 10

// SeriesBuilder projects a PR collection into chart series.
// Each method computes its result from scratch.
type SeriesBuilder struct {
	// Window caps the per-PR series. Zero or negative means DefaultSeriesWindow.
	Window int
}

// NewSeriesBuilder creates a SeriesBuilder with the given window.
func NewSeriesBuilder(window int) SeriesBuilder {
	return SeriesBuilder{Window: window}
}

func (b SeriesBuilder) window(prs []domain.PullRequest) []domain.PullRequest {
	w := b.Window
	if w <= 0 {
		w = DefaultSeriesWindow
	}
	return prs[:min(w, len(prs))]
}

func prLabel(pr domain.PullRequest) string {
	return fmt.Sprintf("PR #%d", pr.Number)
}

// BuildCoverage returns build time, coverage and errors for the first
// Window PRs, in input order.
func (b SeriesBuilder) BuildCoverage(prs []domain.PullRequest) []domain.BuildPoint {
	win := b.window(prs)
	out := make([]domain.BuildPoint, 0, len(win))
	for _, pr := range win {
		out = append(out, domain.BuildPoint{
			Label:        prLabel(pr),
			BuildTime:    pr.Metrics.BuildTime,
			TestCoverage: pr.Metrics.TestCoverage,
			Errors:       pr.Metrics.Errors,
		})
	}
	return out
}

// ErrorTrend returns the error count of the same window, positionally.
func (b SeriesBuilder) ErrorTrend(prs []domain.PullRequest) []domain.ErrorPoint {
	win := b.window(prs)
	out := make([]domain.ErrorPoint, 0, len(win))
	for _, pr := range win {
		out = append(out, domain.ErrorPoint{Label: prLabel(pr), Errors: pr.Metrics.Errors})
	}
	return out
}

// StatusDistribution counts PRs per status in open, closed, merged order.
// Statuses without PRs are omitted.
func (b SeriesBuilder) StatusDistribution(prs []domain.PullRequest) []domain.DistributionEntry {
	counts := make(map[domain.Status]int, len(domain.Statuses))
	for _, pr := range prs {
		counts[pr.Status]++
	}
	out := make([]domain.DistributionEntry, 0, len(domain.Statuses))
	for _, st := range domain.Statuses {
		if c := counts[st]; c > 0 {
			out = append(out, domain.DistributionEntry{Name: string(st), Count: c})
		}
	}
	return out
}

// DeploymentDistribution counts PRs per deployment status in success,
// failed, pending, in-progress order. Statuses without PRs are omitted.
func (b SeriesBuilder) DeploymentDistribution(prs []domain.PullRequest) []domain.DistributionEntry {
	counts := make(map[domain.DeploymentStatus]int, len(domain.DeploymentStatuses))
	for _, pr := range prs {
		counts[pr.Metrics.DeploymentStatus]++
	}
	out := make([]domain.DistributionEntry, 0, len(domain.DeploymentStatuses))
	for _, st := range domain.DeploymentStatuses {
		if c := counts[st]; c > 0 {
			out = append(out, domain.DistributionEntry{Name: string(st), Count: c})
		}
	}
	return out
}

// Build returns every chart of the chart view.
func (b SeriesBuilder) Build(prs []domain.PullRequest) domain.Charts {
	return domain.Charts{
		BuildCoverage:          b.BuildCoverage(prs),
		ErrorTrend:             b.ErrorTrend(prs),
		StatusDistribution:     b.StatusDistribution(prs),
		DeploymentDistribution: b.DeploymentDistribution(prs),
		Metrics:                MetricStats(prs),
	}
}
