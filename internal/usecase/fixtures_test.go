package usecase

import (
	"fmt"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

// newPR builds a validated-looking PR with the given status and metrics.
func newPR(number int, status domain.Status, deploy domain.DeploymentStatus, buildTime, coverage float64, errs int) domain.PullRequest {
	return domain.PullRequest{
		ID:           fmt.Sprintf("pr-demo-%d", number),
		Number:       number,
		Status:       status,
		BuildTime:    &buildTime,
		TestCoverage: &coverage,
		Errors:       errs,
		Metrics: domain.PRMetrics{
			BuildTime:        buildTime,
			TestCoverage:     coverage,
			Errors:           errs,
			DeploymentStatus: deploy,
		},
	}
}

func withStatuses(statuses ...domain.Status) []domain.PullRequest {
	prs := make([]domain.PullRequest, 0, len(statuses))
	for i, st := range statuses {
		prs = append(prs, newPR(i+1, st, domain.DeploymentSuccess, 60, 80, 0))
	}
	return prs
}

func numbers(prs []domain.PullRequest) []int {
	out := make([]int, 0, len(prs))
	for _, pr := range prs {
		out = append(out, pr.Number)
	}
	return out
}
