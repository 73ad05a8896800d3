package vinted

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_DailyLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1000, 1000, 3)
	ctx := context.Background()

	for range 3 {
		require.NoError(t, rl.Wait(ctx))
	}

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDailyLimitReached)
	assert.Equal(t, int64(3), rl.DailyCount())
	assert.Equal(t, int64(0), rl.Remaining())
}

func TestRateLimiter_RollingWindowReset(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1000, 1000, 2, WithRateLimiterNowFunc(func() time.Time {
		return now
	}))
	ctx := context.Background()

	require.NoError(t, rl.Wait(ctx))
	require.NoError(t, rl.Wait(ctx))
	require.ErrorIs(t, rl.Wait(ctx), ErrDailyLimitReached)

	// Advance past the 24-hour window; the quota resets.
	now = now.Add(25 * time.Hour)
	require.NoError(t, rl.Wait(ctx))
	assert.Equal(t, int64(1), rl.DailyCount())
}

func TestRateLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	// Zero refill with an exhausted bucket forces Wait to block.
	rl := NewRateLimiter(0.001, 1, 100)
	ctx := context.Background()
	require.NoError(t, rl.Wait(ctx))

	cancelCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()

	err := rl.Wait(cancelCtx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDailyLimitReached)
}

func TestRateLimiter_Remaining(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1000, 1000, 5)
	assert.Equal(t, int64(5), rl.Remaining())
	assert.Equal(t, int64(5), rl.MaxDaily())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(4), rl.Remaining())
	assert.False(t, rl.ResetAt().IsZero())
}
