package domain

import (
	"fmt"
	"time"
)

// RepoPayload is the repository document served by a pulsecheck API.
// The count fields are informational; summaries are always recomputed.
type RepoPayload struct {
	RepoName  string      `json:"repoName"`
	TotalPRs  int         `json:"totalPRs"`
	OpenPRs   int         `json:"openPRs"`
	ClosedPRs int         `json:"closedPRs"`
	MergedPRs int         `json:"mergedPRs"`
	PRs       []PRPayload `json:"prs"`
}

// PRPayload is the loosely typed wire form of a pull request.
type PRPayload struct {
	ID            string         `json:"id"`
	Number        int            `json:"number"`
	Title         string         `json:"title"`
	Status        string         `json:"status"`
	Author        string         `json:"author"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
	Branch        string         `json:"branch"`
	DeploymentURL string         `json:"deploymentUrl,omitempty"`
	BuildTime     *float64       `json:"buildTime,omitempty"`
	TestCoverage  *float64       `json:"testCoverage,omitempty"`
	Errors        int            `json:"errors"`
	Logs          []LogPayload   `json:"logs"`
	Metrics       MetricsPayload `json:"metrics"`
}

// LogPayload is the wire form of a log line.
type LogPayload struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Source    string `json:"source,omitempty"`
}

// MetricsPayload is the wire form of PR metrics.
type MetricsPayload struct {
	BuildTime        float64 `json:"buildTime"`
	TestCoverage     float64 `json:"testCoverage"`
	LinesOfCode      int     `json:"linesOfCode"`
	FilesChanged     int     `json:"filesChanged"`
	Errors           int     `json:"errors"`
	Warnings         int     `json:"warnings"`
	DeploymentStatus string  `json:"deploymentStatus"`
}

// Snapshot validates the payload and converts it into domain entities.
// The first violation aborts the conversion; no partial snapshot is returned.
// fallbackName is used when the payload carries no repository name.
func (p *RepoPayload) Snapshot(fallbackName string) (*Snapshot, error) {
	name := p.RepoName
	if name == "" {
		name = fallbackName
	}

	prs := make([]PullRequest, 0, len(p.PRs))
	seen := make(map[int]struct{}, len(p.PRs))
	for i := range p.PRs {
		pr, err := p.PRs[i].toPullRequest()
		if err != nil {
			return nil, fmt.Errorf("repo %s, pr index %d: %w", name, i, err)
		}
		if _, dup := seen[pr.Number]; dup {
			return nil, fmt.Errorf("repo %s: %w: duplicate pr number %d", name, ErrInvalidSnapshot, pr.Number)
		}
		seen[pr.Number] = struct{}{}
		prs = append(prs, pr)
	}
	return &Snapshot{RepoName: name, PRs: prs}, nil
}

func (p *PRPayload) toPullRequest() (PullRequest, error) {
	if p.Number <= 0 {
		return PullRequest{}, fmt.Errorf("%w: pr number must be positive, got %d", ErrInvalidSnapshot, p.Number)
	}
	status, err := ParseStatus(p.Status)
	if err != nil {
		return PullRequest{}, err
	}
	metrics, err := p.Metrics.toMetrics()
	if err != nil {
		return PullRequest{}, err
	}

	createdAt, err := parseTime("createdAt", p.CreatedAt)
	if err != nil {
		return PullRequest{}, err
	}
	updatedAt, err := parseTime("updatedAt", p.UpdatedAt)
	if err != nil {
		return PullRequest{}, err
	}
	if updatedAt.Before(createdAt) {
		return PullRequest{}, fmt.Errorf("%w: updatedAt %s precedes createdAt %s", ErrInvalidSnapshot, p.UpdatedAt, p.CreatedAt)
	}

	// Top-level figures are cached views of the metrics and must agree with them.
	if p.BuildTime != nil && *p.BuildTime != metrics.BuildTime {
		return PullRequest{}, fmt.Errorf("%w: buildTime %v differs from metrics %v", ErrInvalidSnapshot, *p.BuildTime, metrics.BuildTime)
	}
	if p.TestCoverage != nil && *p.TestCoverage != metrics.TestCoverage {
		return PullRequest{}, fmt.Errorf("%w: testCoverage %v differs from metrics %v", ErrInvalidSnapshot, *p.TestCoverage, metrics.TestCoverage)
	}
	if p.Errors != metrics.Errors {
		return PullRequest{}, fmt.Errorf("%w: errors %d differs from metrics %d", ErrInvalidSnapshot, p.Errors, metrics.Errors)
	}

	logs := make([]LogEntry, 0, len(p.Logs))
	logIDs := make(map[string]struct{}, len(p.Logs))
	for _, l := range p.Logs {
		level, err := ParseLogLevel(l.Level)
		if err != nil {
			return PullRequest{}, fmt.Errorf("log %s: %w", l.ID, err)
		}
		if _, dup := logIDs[l.ID]; dup {
			return PullRequest{}, fmt.Errorf("%w: duplicate log id %q", ErrInvalidSnapshot, l.ID)
		}
		logIDs[l.ID] = struct{}{}
		logs = append(logs, LogEntry{
			ID:        l.ID,
			Timestamp: l.Timestamp,
			Level:     level,
			Message:   l.Message,
			Source:    l.Source,
		})
	}

	return PullRequest{
		ID:            p.ID,
		Number:        p.Number,
		Title:         p.Title,
		Status:        status,
		Author:        p.Author,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		Branch:        p.Branch,
		DeploymentURL: p.DeploymentURL,
		BuildTime:     copyFloat(p.BuildTime),
		TestCoverage:  copyFloat(p.TestCoverage),
		Errors:        p.Errors,
		Logs:          logs,
		Metrics:       metrics,
	}, nil
}

func (m *MetricsPayload) toMetrics() (PRMetrics, error) {
	ds, err := ParseDeploymentStatus(m.DeploymentStatus)
	if err != nil {
		return PRMetrics{}, err
	}
	switch {
	case m.BuildTime < 0:
		return PRMetrics{}, fmt.Errorf("%w: negative build time %v", ErrInvalidSnapshot, m.BuildTime)
	case m.TestCoverage < 0 || m.TestCoverage > 100:
		return PRMetrics{}, fmt.Errorf("%w: test coverage %v out of range", ErrInvalidSnapshot, m.TestCoverage)
	case m.LinesOfCode < 0, m.FilesChanged < 0, m.Errors < 0, m.Warnings < 0:
		return PRMetrics{}, fmt.Errorf("%w: negative metric count", ErrInvalidSnapshot)
	}
	return PRMetrics{
		BuildTime:        m.BuildTime,
		TestCoverage:     m.TestCoverage,
		LinesOfCode:      m.LinesOfCode,
		FilesChanged:     m.FilesChanged,
		Errors:           m.Errors,
		Warnings:         m.Warnings,
		DeploymentStatus: ds,
	}, nil
}

// ParseTimestamp parses an RFC 3339 timestamp as sent by the API.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func parseTime(field, value string) (time.Time, error) {
	t, err := ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrMalformedTimestamp, field, value)
	}
	return t, nil
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
