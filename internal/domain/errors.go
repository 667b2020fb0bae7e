package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus is returned when a status, deployment status or log
	// level falls outside its closed set of variants.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrMalformedTimestamp signals a timestamp that cannot be parsed.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	// ErrUpstreamFailure signals that the data source answered success=false.
	ErrUpstreamFailure = errors.New("upstream failure")
	// ErrInvalidSnapshot signals a payload that breaks a structural invariant.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrPRNotFound signals a PR number missing from the snapshot.
	ErrPRNotFound = errors.New("pr not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TimestampError reports a single log entry excluded from a ranked view.
type TimestampError struct {
	LogID string
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("log %s: %s %q", e.LogID, ErrMalformedTimestamp, e.Value)
}

func (e *TimestampError) Unwrap() error {
	return ErrMalformedTimestamp
}
