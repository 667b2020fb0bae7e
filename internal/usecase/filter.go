package usecase

import "github.com/naka-gawa/pulsecheck/internal/domain"

// FilterByStatus returns the PRs whose status matches filter, in input order.
// FilterAll returns prs itself. The input is never modified.
func FilterByStatus(prs []domain.PullRequest, filter domain.StatusFilter) []domain.PullRequest {
	if filter == domain.FilterAll {
		return prs
	}
	out := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if domain.StatusFilter(pr.Status) == filter {
			out = append(out, pr)
		}
	}
	return out
}
