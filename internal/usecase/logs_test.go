package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/pulsecheck/internal/domain"
)

func logAt(id, ts string) domain.LogEntry {
	return domain.LogEntry{ID: id, Timestamp: ts, Level: domain.LevelInfo}
}

func ids(entries []domain.LogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestRecentLogs_TieKeepsInputOrder(t *testing.T) {
	logs := []domain.LogEntry{
		logAt("a", "1970-01-01T00:00:10Z"),
		logAt("b", "1970-01-01T00:00:30Z"),
		logAt("c", "1970-01-01T00:00:10Z"),
	}

	got, err := RecentLogs(logs, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(got))

	// The input keeps its original order.
	assert.Equal(t, []string{"a", "b", "c"}, ids(logs))
}

func TestRecentLogs_Length(t *testing.T) {
	logs := []domain.LogEntry{
		logAt("1", "2024-05-01T10:00:00Z"),
		logAt("2", "2024-05-03T10:00:00Z"),
		logAt("3", "2024-05-02T10:00:00.250Z"),
		logAt("4", "2024-05-02T10:00:00+02:00"),
	}

	for _, k := range []int{0, 1, 3, 4, 10} {
		got, err := RecentLogs(logs, k)
		require.NoError(t, err)
		assert.Len(t, got, min(k, len(logs)), "limit %d", k)
	}

	all, err := RecentLogs(logs, 10)
	require.NoError(t, err)
	// 10:00+02:00 is 08:00Z, earlier than 10:00:00.250Z.
	assert.Equal(t, []string{"2", "3", "4", "1"}, ids(all))
}

func TestRecentLogs_SortedNonIncreasing(t *testing.T) {
	logs := []domain.LogEntry{
		logAt("x", "2024-01-01T00:00:05Z"),
		logAt("y", "2024-01-01T00:00:01Z"),
		logAt("z", "2024-01-01T00:00:09Z"),
		logAt("w", "2024-01-01T00:00:05Z"),
	}
	got, err := RecentLogs(logs, len(logs))
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		prev, _ := domain.ParseTimestamp(got[i-1].Timestamp)
		cur, _ := domain.ParseTimestamp(got[i].Timestamp)
		assert.False(t, cur.After(prev))
	}
	assert.Equal(t, []string{"z", "x", "w", "y"}, ids(got))
}

func TestRecentLogs_ExcludesMalformedTimestamps(t *testing.T) {
	logs := []domain.LogEntry{
		logAt("ok-1", "2024-05-01T10:00:00Z"),
		logAt("bad", "sometime"),
		logAt("ok-2", "2024-05-02T10:00:00Z"),
	}

	got, err := RecentLogs(logs, 5)

	assert.Equal(t, []string{"ok-2", "ok-1"}, ids(got))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedTimestamp)
	var tsErr *domain.TimestampError
	require.True(t, errors.As(err, &tsErr))
	assert.Equal(t, "bad", tsErr.LogID)
}

func TestRecentLogs_EmptyAndInvalidLimit(t *testing.T) {
	got, err := RecentLogs(nil, 3)
	assert.NoError(t, err)
	assert.Empty(t, got)

	_, err = RecentLogs(nil, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
