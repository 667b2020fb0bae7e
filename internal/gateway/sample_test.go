package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestSampleGateway_Deterministic(t *testing.T) {
	ctx := context.Background()
	first, err := NewSampleGateway(42, fixedNow).FetchRepo(ctx, "demo")
	require.NoError(t, err)
	second, err := NewSampleGateway(42, fixedNow).FetchRepo(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := NewSampleGateway(43, fixedNow).FetchRepo(ctx, "demo")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestSampleGateway_ProducesValidSnapshots(t *testing.T) {
	ctx := context.Background()
	for seed := uint64(0); seed < 20; seed++ {
		resp, err := NewSampleGateway(seed, fixedNow).FetchRepo(ctx, "demo")
		require.NoError(t, err)
		payload, err := resp.Payload()
		require.NoError(t, err)

		snapshot, err := payload.Snapshot("demo")
		require.NoError(t, err, "seed %d", seed)

		assert.GreaterOrEqual(t, len(snapshot.PRs), 5)
		assert.LessOrEqual(t, len(snapshot.PRs), 19)
		assert.Equal(t, payload.TotalPRs, payload.OpenPRs+payload.ClosedPRs+payload.MergedPRs)
		for _, pr := range snapshot.PRs {
			assert.GreaterOrEqual(t, len(pr.Logs), 5)
			assert.False(t, pr.UpdatedAt.Before(pr.CreatedAt))
		}
	}
}

func TestSampleGateway_RequiresRepoName(t *testing.T) {
	resp, err := NewSampleGateway(1, fixedNow).FetchRepo(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, resp.Success)
}
