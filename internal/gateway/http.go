package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/naka-gawa/pulsecheck/internal/logging"
)

// maxResponseBytes bounds the size of a repository document.
const maxResponseBytes = 32 << 20

// HTTPGateway fetches repository documents from a pulsecheck-compatible API
// exposing GET {base}/api/repos/{repoName}.
type HTTPGateway struct {
	baseURL *url.URL
	client  *http.Client
	logger  logging.Logger
}

// NewHTTPGateway is a constructor that creates a new instance of HTTPGateway.
func NewHTTPGateway(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPGateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}
	return &HTTPGateway{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.WithName("http-gateway"),
	}, nil
}

func (g *HTTPGateway) repoURL(repoName string) string {
	return strings.TrimSuffix(g.baseURL.String(), "/") + "/api/repos/" + url.PathEscape(repoName)
}

// FetchRepo performs a single request; retries are left to the caller.
func (g *HTTPGateway) FetchRepo(ctx context.Context, repoName string) (*Response, error) {
	target := g.repoURL(repoName)
	g.logger.Debug("Fetching repository document", "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s: %w", repoName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON response from %s (status %d)", target, resp.StatusCode)
	}

	// Inspect the envelope first: failed responses carry no usable data and
	// are often served with a non-2xx status.
	success := gjson.GetBytes(body, "success")
	if !success.Exists() {
		return nil, fmt.Errorf("response from %s has no success field (status %d)", target, resp.StatusCode)
	}
	if !success.Bool() {
		g.logger.Debug("Upstream reported failure", "status", resp.StatusCode)
		return &Response{
			Success: false,
			Error:   gjson.GetBytes(body, "error").String(),
			Message: gjson.GetBytes(body, "message").String(),
		}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d for successful envelope from %s", resp.StatusCode, target)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode repository document: %w", err)
	}
	if out.Data != nil {
		g.logger.Debug("Fetched repository document", "prs", len(out.Data.PRs))
	}
	return &out, nil
}
