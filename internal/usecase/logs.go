package usecase

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

// DefaultLogLimit is the number of log lines shown for a PR.
const DefaultLogLimit = 10

// RecentLogs returns at most limit entries ordered newest first. Entries with
// equal timestamps keep their input order. Entries whose timestamp cannot be
// parsed are left out and reported through the returned error, which joins one
// *domain.TimestampError per excluded entry; the returned slice is valid even
// when the error is non-nil. The input slice is not modified.
func RecentLogs(logs []domain.LogEntry, limit int) ([]domain.LogEntry, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: log limit must not be negative, got %d", domain.ErrInvalidArgument, limit)
	}

	type ranked struct {
		entry domain.LogEntry
		at    time.Time
	}
	valid := make([]ranked, 0, len(logs))
	var errs []error
	for _, l := range logs {
		at, err := domain.ParseTimestamp(l.Timestamp)
		if err != nil {
			errs = append(errs, &domain.TimestampError{LogID: l.ID, Value: l.Timestamp})
			continue
		}
		valid = append(valid, ranked{entry: l, at: at})
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].at.After(valid[j].at)
	})

	n := min(limit, len(valid))
	out := make([]domain.LogEntry, 0, n)
	for _, r := range valid[:n] {
		out = append(out, r.entry)
	}
	return out, errors.Join(errs...)
}
