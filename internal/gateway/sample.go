package gateway

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

var (
	sampleAuthors  = []string{"alice", "bob", "charlie", "diana", "eve"}
	sampleSources  = []string{"build", "test", "deploy", "lint"}
	sampleFeatures = []string{
		"Add user authentication",
		"Implement caching layer",
		"Update API endpoints",
		"Fix memory leak",
		"Optimize database queries",
		"Add monitoring dashboard",
		"Implement rate limiting",
		"Update documentation",
		"Add unit tests",
		"Refactor component structure",
	}
	sampleMessages = []string{
		"Build completed successfully",
		"Running unit tests...",
		"Deployment initiated",
		"Code quality check passed",
		"Warning: Deprecated API usage detected",
		"Error: Test case failed",
		"Docker image built successfully",
		"Database migration completed",
		"Security scan completed",
		"Performance metrics collected",
	}
	sampleLevels = []string{"info", "warn", "error", "debug"}
)

// Source is the randomness used to fabricate sample data.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// SampleGateway fabricates repository documents for demos and local runs.
// Documents are a pure function of the seed, the repository name and Now.
type SampleGateway struct {
	seed uint64
	now  func() time.Time
}

// NewSampleGateway creates a generator. A nil now uses time.Now.
func NewSampleGateway(seed uint64, now func() time.Time) *SampleGateway {
	if now == nil {
		now = time.Now
	}
	return &SampleGateway{seed: seed, now: now}
}

// FetchRepo generates the document for repoName.
func (g *SampleGateway) FetchRepo(ctx context.Context, repoName string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if repoName == "" {
		return &Response{Success: false, Error: "Repository name is required"}, nil
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(repoName))
	src := rand.New(rand.NewPCG(g.seed, h.Sum64()))
	return &Response{Success: true, Data: GenerateRepo(src, repoName, g.now())}, nil
}

// GenerateRepo builds a document with 5 to 19 pull requests.
func GenerateRepo(src Source, repoName string, now time.Time) *domain.RepoPayload {
	count := src.IntN(15) + 5
	prs := make([]domain.PRPayload, 0, count)
	for i := 1; i <= count; i++ {
		prs = append(prs, generatePR(src, repoName, i, now))
	}
	sort.SliceStable(prs, func(a, b int) bool {
		return prs[a].UpdatedAt > prs[b].UpdatedAt
	})

	payload := &domain.RepoPayload{RepoName: repoName, TotalPRs: len(prs), PRs: prs}
	for _, pr := range prs {
		switch pr.Status {
		case string(domain.StatusOpen):
			payload.OpenPRs++
		case string(domain.StatusClosed):
			payload.ClosedPRs++
		case string(domain.StatusMerged):
			payload.MergedPRs++
		}
	}
	return payload
}

func generatePR(src Source, repoName string, n int, now time.Time) domain.PRPayload {
	status := domain.Statuses[src.IntN(len(domain.Statuses))]
	metrics := generateMetrics(src)

	createdAt := now.Add(-randomDuration(src, 30*24*time.Hour))
	updatedAt := now.Add(-randomDuration(src, 7*24*time.Hour))
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}

	var deploymentURL string
	if status == domain.StatusMerged || src.Float64() > 0.5 {
		deploymentURL = fmt.Sprintf("https://deploy-%s-pr%d.herokuapp.com", repoName, n)
	}

	buildTime, coverage := metrics.BuildTime, metrics.TestCoverage
	return domain.PRPayload{
		ID:            fmt.Sprintf("pr-%s-%d", repoName, n),
		Number:        n,
		Title:         "Feature: " + sampleFeatures[src.IntN(len(sampleFeatures))],
		Status:        string(status),
		Author:        sampleAuthors[src.IntN(len(sampleAuthors))],
		CreatedAt:     createdAt.UTC().Format(isoMillis),
		UpdatedAt:     updatedAt.UTC().Format(isoMillis),
		Branch:        fmt.Sprintf("feature/branch-%d", n),
		DeploymentURL: deploymentURL,
		BuildTime:     &buildTime,
		TestCoverage:  &coverage,
		Errors:        metrics.Errors,
		Logs:          generateLogs(src, n, now),
		Metrics:       metrics,
	}
}

func generateMetrics(src Source) domain.MetricsPayload {
	return domain.MetricsPayload{
		BuildTime:        float64(src.IntN(300) + 30),
		TestCoverage:     float64(src.IntN(40) + 60),
		LinesOfCode:      src.IntN(1000) + 100,
		FilesChanged:     src.IntN(20) + 1,
		Errors:           src.IntN(5),
		Warnings:         src.IntN(10),
		DeploymentStatus: string(domain.DeploymentStatuses[src.IntN(len(domain.DeploymentStatuses))]),
	}
}

func generateLogs(src Source, prNumber int, now time.Time) []domain.LogPayload {
	count := src.IntN(20) + 5
	logs := make([]domain.LogPayload, 0, count)
	for i := 0; i < count; i++ {
		logs = append(logs, domain.LogPayload{
			ID:        fmt.Sprintf("log-%d-%d", prNumber, i),
			Timestamp: now.Add(-randomDuration(src, 7*24*time.Hour)).UTC().Format(isoMillis),
			Level:     sampleLevels[src.IntN(len(sampleLevels))],
			Message:   fmt.Sprintf("PR #%d: %s", prNumber, sampleMessages[src.IntN(len(sampleMessages))]),
			Source:    sampleSources[src.IntN(len(sampleSources))],
		})
	}
	return logs
}

func randomDuration(src Source, span time.Duration) time.Duration {
	return time.Duration(src.Float64() * float64(span))
}
