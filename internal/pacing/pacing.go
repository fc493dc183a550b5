// Package pacing provides the delay policies placed between outbound
// requests: between batch iterations and between retries of a failed image.
package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Policy blocks until the next request may be issued.
type Policy interface {
	Wait(ctx context.Context) error
}

// None never waits. Tests inject it to run without delays.
type None struct{}

func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Fixed waits a constant duration.
type Fixed struct {
	Delay time.Duration
}

func (f Fixed) Wait(ctx context.Context) error {
	if f.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// TokenBucket paces requests with a token bucket limiter.
type TokenBucket struct {
	limiter *rate.Limiter
}

// NewTokenBucket allows rpm requests per minute with the given burst.
func NewTokenBucket(rpm, burst int) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	return &TokenBucket{limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)}
}

func (t *TokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
