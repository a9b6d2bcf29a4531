package asyncx_test

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/mailbatch/pkg/asyncx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleep_ReturnsAfterDuration(t *testing.T) {
	start := time.Now()
	require.NoError(t, asyncx.Sleep(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSleep_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := asyncx.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFixedDelay_NonPositiveIsNoDelay(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		start := time.Now()
		require.NoError(t, asyncx.FixedDelay(d).Wait(context.Background()))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	}
}

func TestFixedDelay_Waits(t *testing.T) {
	p := asyncx.FixedDelay(15 * time.Millisecond)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestTokenBucket_BurstPassesImmediately(t *testing.T) {
	p := asyncx.TokenBucket(60, 3)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestTokenBucket_CancelledContext(t *testing.T) {
	p := asyncx.TokenBucket(1, 1)
	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, p.Wait(ctx))
}

func TestPacerFunc(t *testing.T) {
	calls := 0
	p := asyncx.PacerFunc(func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, p.Wait(context.Background()))
	assert.Equal(t, 1, calls)
}
