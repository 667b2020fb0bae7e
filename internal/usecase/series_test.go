package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

func TestSeriesBuilder_BuildCoverage(t *testing.T) {
	prs := []domain.PullRequest{
		newPR(7, domain.StatusOpen, domain.DeploymentPending, 45, 91.5, 1),
		newPR(3, domain.StatusMerged, domain.DeploymentSuccess, 120, 64, 0),
		newPR(12, domain.StatusClosed, domain.DeploymentFailed, 300, 70, 4),
	}

	got := NewSeriesBuilder(2).BuildCoverage(prs)

	assert.Equal(t, []domain.BuildPoint{
		{Label: "PR #7", BuildTime: 45, TestCoverage: 91.5, Errors: 1},
		{Label: "PR #3", BuildTime: 120, TestCoverage: 64, Errors: 0},
	}, got)
}

func TestSeriesBuilder_Window(t *testing.T) {
	prs := make([]domain.PullRequest, 0, 15)
	for i := 1; i <= 15; i++ {
		prs = append(prs, newPR(i, domain.StatusOpen, domain.DeploymentSuccess, float64(i), 50, i%3))
	}

	testCases := []struct {
		name   string
		window int
		input  int
		want   int
	}{
		{name: "default window", window: 0, input: 15, want: DefaultSeriesWindow},
		{name: "custom window", window: 4, input: 15, want: 4},
		{name: "fewer prs than window", window: 10, input: 6, want: 6},
		{name: "empty input", window: 10, input: 0, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewSeriesBuilder(tc.window)
			build := b.BuildCoverage(prs[:tc.input])
			trend := b.ErrorTrend(prs[:tc.input])
			require.Len(t, build, tc.want)
			require.Len(t, trend, tc.want)
			for i := range build {
				assert.Equal(t, build[i].Label, trend[i].Label)
				assert.Equal(t, build[i].Errors, trend[i].Errors)
			}
		})
	}
}

func TestSeriesBuilder_ErrorTrendKeepsInputOrder(t *testing.T) {
	prs := []domain.PullRequest{
		newPR(2, domain.StatusOpen, domain.DeploymentSuccess, 10, 50, 3),
		newPR(1, domain.StatusOpen, domain.DeploymentSuccess, 10, 50, 0),
		newPR(5, domain.StatusOpen, domain.DeploymentSuccess, 10, 50, 2),
	}
	assert.Equal(t, []domain.ErrorPoint{
		{Label: "PR #2", Errors: 3},
		{Label: "PR #1", Errors: 0},
		{Label: "PR #5", Errors: 2},
	}, SeriesBuilder{}.ErrorTrend(prs))
}

func TestSeriesBuilder_StatusDistribution(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []domain.Status
		want     []domain.DistributionEntry
	}{
		{
			name:     "fixed order regardless of input order",
			statuses: []domain.Status{domain.StatusMerged, domain.StatusClosed, domain.StatusOpen, domain.StatusMerged},
			want: []domain.DistributionEntry{
				{Name: "open", Count: 1},
				{Name: "closed", Count: 1},
				{Name: "merged", Count: 2},
			},
		},
		{
			name:     "zero counts are omitted",
			statuses: []domain.Status{domain.StatusOpen, domain.StatusMerged, domain.StatusOpen},
			want: []domain.DistributionEntry{
				{Name: "open", Count: 2},
				{Name: "merged", Count: 1},
			},
		},
		{
			name: "empty input",
			want: []domain.DistributionEntry{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prs := withStatuses(tc.statuses...)
			got := SeriesBuilder{}.StatusDistribution(prs)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(prs), sumCounts(got))
		})
	}
}

func TestSeriesBuilder_DeploymentDistribution(t *testing.T) {
	prs := []domain.PullRequest{
		newPR(1, domain.StatusOpen, domain.DeploymentInProgress, 10, 50, 0),
		newPR(2, domain.StatusOpen, domain.DeploymentFailed, 10, 50, 0),
		newPR(3, domain.StatusOpen, domain.DeploymentInProgress, 10, 50, 0),
		newPR(4, domain.StatusOpen, domain.DeploymentSuccess, 10, 50, 0),
	}

	got := SeriesBuilder{}.DeploymentDistribution(prs)

	assert.Equal(t, []domain.DistributionEntry{
		{Name: "success", Count: 1},
		{Name: "failed", Count: 1},
		{Name: "in-progress", Count: 2},
	}, got)
	for _, e := range got {
		assert.Positive(t, e.Count)
	}
	assert.Equal(t, len(prs), sumCounts(got))
}

func TestSeriesBuilder_Build(t *testing.T) {
	prs := withStatuses(domain.StatusOpen, domain.StatusClosed)
	charts := NewSeriesBuilder(1).Build(prs)

	assert.Len(t, charts.BuildCoverage, 1)
	assert.Len(t, charts.ErrorTrend, 1)
	assert.Len(t, charts.StatusDistribution, 2)
	assert.Equal(t, []domain.DistributionEntry{{Name: "success", Count: 2}}, charts.DeploymentDistribution)
	assert.Equal(t, 2, charts.Metrics.SampleSize)
}

func sumCounts(entries []domain.DistributionEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	return total
}
