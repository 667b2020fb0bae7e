// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a pull request.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusMerged Status = "merged"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusOpen, StatusClosed, StatusMerged}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: pr status %q", ErrInvalidStatus, s)
}

// DeploymentStatus is the state of the deployment built from a pull request.
type DeploymentStatus string

const (
	DeploymentSuccess    DeploymentStatus = "success"
	DeploymentFailed     DeploymentStatus = "failed"
	DeploymentPending    DeploymentStatus = "pending"
	DeploymentInProgress DeploymentStatus = "in-progress"
)

// DeploymentStatuses lists every deployment status in display order.
var DeploymentStatuses = []DeploymentStatus{DeploymentSuccess, DeploymentFailed, DeploymentPending, DeploymentInProgress}

// ParseDeploymentStatus converts a wire value into a DeploymentStatus.
func ParseDeploymentStatus(s string) (DeploymentStatus, error) {
	for _, st := range DeploymentStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: deployment status %q", ErrInvalidStatus, s)
}

// LogLevel is the severity of a log line.
type LogLevel string

const (
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
	LevelDebug LogLevel = "debug"
)

var logLevels = []LogLevel{LevelInfo, LevelWarn, LevelError, LevelDebug}

// ParseLogLevel converts a wire value into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	for _, l := range logLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: log level %q", ErrInvalidStatus, s)
}

// StatusFilter selects PRs by status. FilterAll keeps everything.
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter accepts "all" or any Status value.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" || s == string(FilterAll) {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return StatusFilter(st), nil
}

// PullRequest is one pull request of a snapshot.
// BuildTime, TestCoverage and Errors mirror the values held in Metrics.
type PullRequest struct {
	ID            string     `json:"id"`
	Number        int        `json:"number"`
	Title         string     `json:"title"`
	Status        Status     `json:"status"`
	Author        string     `json:"author"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Branch        string     `json:"branch"`
	DeploymentURL string     `json:"deploymentUrl,omitempty"`
	BuildTime     *float64   `json:"buildTime,omitempty"`
	TestCoverage  *float64   `json:"testCoverage,omitempty"`
	Errors        int        `json:"errors"`
	Logs          []LogEntry `json:"logs"`
	Metrics       PRMetrics  `json:"metrics"`
}

// LogEntry is one log line attached to a pull request.
// Timestamp keeps the wire form; it is parsed when logs are ranked.
type LogEntry struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Level     LogLevel `json:"level"`
	Message   string   `json:"message"`
	Source    string   `json:"source,omitempty"`
}

// PRMetrics is the build and test snapshot of a pull request.
type PRMetrics struct {
	BuildTime        float64          `json:"buildTime"`
	TestCoverage     float64          `json:"testCoverage"`
	LinesOfCode      int              `json:"linesOfCode"`
	FilesChanged     int              `json:"filesChanged"`
	Errors           int              `json:"errors"`
	Warnings         int              `json:"warnings"`
	DeploymentStatus DeploymentStatus `json:"deploymentStatus"`
}

// Snapshot is the validated, immutable result of one fetch for a repository.
type Snapshot struct {
	RepoName string
	PRs      []PullRequest
}

// FindPR returns the PR with the given number.
func (s *Snapshot) FindPR(number int) (PullRequest, error) {
	for _, pr := range s.PRs {
		if pr.Number == number {
			return pr, nil
		}
	}
	return PullRequest{}, fmt.Errorf("%w: #%d in %s", ErrPRNotFound, number, s.RepoName)
}
