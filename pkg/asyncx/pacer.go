package asyncx

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer decides how long to wait before the next send.
type Pacer interface {
	// Wait blocks until the next send may start or ctx is done.
	Wait(ctx context.Context) error
}

// PacerFunc adapts a function to the Pacer interface.
type PacerFunc func(ctx context.Context) error

// Wait calls f(ctx).
func (f PacerFunc) Wait(ctx context.Context) error { return f(ctx) }

// NoDelay is a Pacer that never waits.
var NoDelay Pacer = PacerFunc(func(ctx context.Context) error { return ctx.Err() })

// Sleep pauses for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type fixedDelay struct {
	d time.Duration
}

// FixedDelay returns a Pacer that waits d on every call. A non-positive d
// behaves like NoDelay.
func FixedDelay(d time.Duration) Pacer {
	if d <= 0 {
		return NoDelay
	}
	return fixedDelay{d: d}
}

func (p fixedDelay) Wait(ctx context.Context) error {
	return Sleep(ctx, p.d)
}

type tokenBucket struct {
	limiter *rate.Limiter
}

// TokenBucket returns a Pacer allowing perMinute sends per minute with the
// given burst. A burst below 1 is raised to 1.
func TokenBucket(perMinute float64, burst int) Pacer {
	if perMinute <= 0 {
		return NoDelay
	}
	if burst < 1 {
		burst = 1
	}
	return tokenBucket{limiter: rate.NewLimiter(rate.Limit(perMinute/60), burst)}
}

func (p tokenBucket) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
