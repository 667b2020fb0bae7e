package domain

// RepoSummary holds the status rollup for a single repository.
// It is derived from a snapshot and never stored on its own.
type RepoSummary struct {
	RepoName  string        `json:"repoName"`
	TotalPRs  int           `json:"totalPRs"`
	OpenPRs   int           `json:"openPRs"`
	ClosedPRs int           `json:"closedPRs"`
	MergedPRs int           `json:"mergedPRs"`
	PRs       []PullRequest `json:"prs,omitempty"`
}

// MetricSummary describes the spread of build metrics across a snapshot.
type MetricSummary struct {
	SampleSize         int     `json:"sampleSize"`
	MeanBuildTime      float64 `json:"meanBuildTime"`
	MedianBuildTime    float64 `json:"medianBuildTime"`
	P90BuildTime       float64 `json:"p90BuildTime"`
	MeanTestCoverage   float64 `json:"meanTestCoverage"`
	MedianTestCoverage float64 `json:"medianTestCoverage"`
	MeanErrors         float64 `json:"meanErrors"`
	TotalWarnings      int     `json:"totalWarnings"`
}

// Overview is the cross-repository rollup shown on the landing page.
type Overview struct {
	Repos          []RepoSummary `json:"repos"`
	TotalRepos     int           `json:"totalRepos"`
	TotalPRs       int           `json:"totalPRs"`
	MostActiveRepo string        `json:"mostActiveRepo,omitempty"`
}

// BuildPoint is one bar of the build time and coverage chart.
type BuildPoint struct {
	Label        string  `json:"label"`
	BuildTime    float64 `json:"buildTime"`
	TestCoverage float64 `json:"testCoverage"`
	Errors       int     `json:"errors"`
}

// ErrorPoint is one point of the error trend line, in positional order.
type ErrorPoint struct {
	Label  string `json:"label"`
	Errors int    `json:"errors"`
}

// DistributionEntry is one slice of a categorical chart.
type DistributionEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Charts bundles every series of the chart view.
type Charts struct {
	BuildCoverage          []BuildPoint        `json:"buildCoverage"`
	ErrorTrend             []ErrorPoint        `json:"errorTrend"`
	StatusDistribution     []DistributionEntry `json:"statusDistribution"`
	DeploymentDistribution []DistributionEntry `json:"deploymentDistribution"`
	Metrics                MetricSummary       `json:"metrics"`
}
