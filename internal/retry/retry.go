// Package retry provides the bounded retry-with-backoff wrapper used around
// the backend call. It is the only resilience logic in the program.
package retry

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Policy bounds a retried operation. Delays double per attempt, starting at
// BaseDelay and clamped to CapDelay.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	CapDelay    time.Duration

	// Sleep waits for d or until ctx is done. Nil selects the real clock;
	// tests inject a recorder.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Backend defaults: 5 total attempts, 4s initial backoff capped at 10s.
var Default = Policy{
	MaxAttempts: 5,
	BaseDelay:   4 * time.Second,
	CapDelay:    10 * time.Second,
}

// Do runs fn until it succeeds or the attempt budget is exhausted, sleeping
// the backoff interval between attempts. The final attempt's error is
// returned when the budget runs out. A MaxAttempts of zero or less still
// runs fn once: the combinator must never report success for a call that
// never happened. Context cancellation during a backoff wait aborts with
// ctx.Err().
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepWithContext
	}

	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := p.backoff(attempt - 1)
			log.Debug().
				Dur("backoff", backoff).
				Int("attempt", attempt+1).
				Msg("Retrying backend call")
			if err := sleep(ctx, backoff); err != nil {
				return zero, err
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt+1).Int("max_attempts", maxAttempts).
			Msg("Backend call failed")
	}

	return zero, lastErr
}

// backoff returns the delay before retry number n (0-based): base*2^n
// clamped to the cap.
func (p Policy) backoff(n int) time.Duration {
	d := p.BaseDelay * time.Duration(1<<uint(n))
	if d > p.CapDelay || d < 0 {
		d = p.CapDelay
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
