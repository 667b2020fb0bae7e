// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/pulsecheck/internal/domain"
	"github.com/naka-gawa/pulsecheck/internal/gateway"
	"github.com/naka-gawa/pulsecheck/internal/logging"
)

// Summarize counts the PRs of a repository by status in a single pass.
// The returned summary references prs without copying it.
func Summarize(repoName string, prs []domain.PullRequest) domain.RepoSummary {
	summary := domain.RepoSummary{RepoName: repoName, TotalPRs: len(prs), PRs: prs}
	for _, pr := range prs {
		switch pr.Status {
		case domain.StatusOpen:
			summary.OpenPRs++
		case domain.StatusClosed:
			summary.ClosedPRs++
		case domain.StatusMerged:
			summary.MergedPRs++
		}
	}
	return summary
}

// Aggregator is the use case behind every dashboard view.
// It fetches one snapshot per call and derives the requested view from it.
type Aggregator struct {
	fetcher  gateway.Fetcher
	series   SeriesBuilder
	logLimit int
	logger   logging.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, series SeriesBuilder, logLimit int, logger logging.Logger) *Aggregator {
	if logLimit < 0 {
		logLimit = DefaultLogLimit
	}
	return &Aggregator{
		fetcher:  fetcher,
		series:   series,
		logLimit: logLimit,
		logger:   logger.WithName("aggregator"),
	}
}

// Load fetches and validates the snapshot of a repository. When the source
// answers success=false the returned error is a *gateway.UpstreamError and no
// derivation happens.
func (a *Aggregator) Load(ctx context.Context, repoName string) (*domain.Snapshot, error) {
	a.logger.Debug("Fetching snapshot", "repo", repoName)
	resp, err := a.fetcher.FetchRepo(ctx, repoName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", repoName, err)
	}
	payload, err := resp.Payload()
	if err != nil {
		return nil, err
	}
	snapshot, err := payload.Snapshot(repoName)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Snapshot loaded", "repo", snapshot.RepoName, "prs", len(snapshot.PRs))
	return snapshot, nil
}

// Summary returns the status rollup of a repository.
func (a *Aggregator) Summary(ctx context.Context, repoName string) (domain.RepoSummary, error) {
	snapshot, err := a.Load(ctx, repoName)
	if err != nil {
		return domain.RepoSummary{}, err
	}
	return Summarize(snapshot.RepoName, snapshot.PRs), nil
}

// PullRequests returns the PRs of a repository matching filter.
func (a *Aggregator) PullRequests(ctx context.Context, repoName string, filter domain.StatusFilter) ([]domain.PullRequest, error) {
	snapshot, err := a.Load(ctx, repoName)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(snapshot.PRs, filter), nil
}

// Logs returns the most recent log lines of one PR. A negative limit uses the
// configured default. Lines with malformed timestamps are logged and skipped.
func (a *Aggregator) Logs(ctx context.Context, repoName string, number, limit int) ([]domain.LogEntry, error) {
	snapshot, err := a.Load(ctx, repoName)
	if err != nil {
		return nil, err
	}
	pr, err := snapshot.FindPR(number)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		limit = a.logLimit
	}

	entries, err := RecentLogs(pr.Logs, limit)
	if err != nil {
		var tsErr *domain.TimestampError
		if !errors.As(err, &tsErr) {
			return nil, err
		}
		a.logger.Info("Skipped log entries with malformed timestamps", "repo", repoName, "pr", number, "detail", err.Error())
	}
	return entries, nil
}

// Charts returns the chart view of a repository.
func (a *Aggregator) Charts(ctx context.Context, repoName string) (domain.Charts, error) {
	snapshot, err := a.Load(ctx, repoName)
	if err != nil {
		return domain.Charts{}, err
	}
	return a.series.Build(snapshot.PRs), nil
}

// Overview fetches every repository concurrently and rolls the summaries up.
// Any failed fetch aborts the whole overview.
func (a *Aggregator) Overview(ctx context.Context, repoNames []string) (*domain.Overview, error) {
	a.logger.Debug("Starting overview", "repos", len(repoNames))
	summaries := make([]domain.RepoSummary, len(repoNames))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, name := range repoNames {
		eg.Go(func() error {
			snapshot, err := a.Load(egCtx, name)
			if err != nil {
				return err
			}
			s := Summarize(snapshot.RepoName, snapshot.PRs)
			s.PRs = nil
			summaries[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Sort by repository name for consistent output.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].RepoName < summaries[j].RepoName
	})

	overview := &domain.Overview{Repos: summaries, TotalRepos: len(summaries)}
	mostPRs := -1
	for _, s := range summaries {
		overview.TotalPRs += s.TotalPRs
		if s.TotalPRs > mostPRs {
			mostPRs = s.TotalPRs
			overview.MostActiveRepo = s.RepoName
		}
	}
	a.logger.Debug("Overview complete", "repos", overview.TotalRepos, "prs", overview.TotalPRs)
	return overview, nil
}
