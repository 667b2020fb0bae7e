// Package gateway provides the data sources a repository snapshot is
// fetched from: a pulsecheck-compatible HTTP API, envelope files on disk
// and a seeded sample generator.
package gateway

import (
	"context"
	"fmt"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

// defaultUpstreamMessage is shown when a failed response carries no text.
const defaultUpstreamMessage = "failed to fetch repository data"

// Fetcher defines the behavior of a gateway for fetching a repository snapshot.
// A response with Success=false is a valid answer, not an error; errors are
// reserved for transport or decoding failures.
type Fetcher interface {
	FetchRepo(ctx context.Context, repoName string) (*Response, error)
}

// Response is the envelope returned by every data source.
type Response struct {
	Success bool                `json:"success"`
	Data    *domain.RepoPayload `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
}

// UpstreamError carries the message of a response with Success=false.
// Error returns the upstream text unchanged.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return domain.ErrUpstreamFailure
}

// Payload returns the repository payload of a successful response.
func (r *Response) Payload() (*domain.RepoPayload, error) {
	if !r.Success {
		msg := r.Error
		if msg == "" {
			msg = r.Message
		}
		if msg == "" {
			msg = defaultUpstreamMessage
		}
		return nil, &UpstreamError{Message: msg}
	}
	if r.Data == nil {
		return nil, fmt.Errorf("%w: successful response without data", domain.ErrInvalidSnapshot)
	}
	return r.Data, nil
}
