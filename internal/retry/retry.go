// Package retry provides retry-with-exponential-backoff for network calls.
//
// The retrier is a higher-order wrapper: callers hand it an operation and a
// Policy, and it reruns the operation while the failure is classified as
// transient. Terminal failures propagate after a single attempt.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

// ErrRetriesExhausted wraps the last transient failure once every attempt has
// been used up. errors.Is still matches the underlying failure kind.
var ErrRetriesExhausted = errors.New("retry: attempts exhausted")

// Policy configures the backoff schedule.
type Policy struct {
	// MaxAttempts is the total number of invocations, including the first.
	MaxAttempts int

	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// Multiplier scales the delay after each failed attempt. Must be >= 1.
	Multiplier float64

	// MaxDelay caps the computed delay. Zero means uncapped.
	MaxDelay time.Duration

	// Jitter randomizes each delay by +/-20% to avoid thundering herds.
	Jitter bool
}

// DefaultPolicy mirrors the schedule of the original agent: three attempts,
// one second base delay, doubling.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Multiplier:  2,
		MaxDelay:    30 * time.Second,
		Jitter:      true,
	}
}

// DelayFor returns the backoff delay before the retry following the given
// 1-based failed attempt: min(base * multiplier^(attempt-1), cap). Jitter is
// not applied here so the schedule stays monotonically non-decreasing.
func (p Policy) DelayFor(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	d := float64(p.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= mult
		if p.MaxDelay > 0 && d >= float64(p.MaxDelay) {
			return p.MaxDelay
		}
	}
	delay := time.Duration(d)
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

// Do invokes op, retrying transient failures per the policy. It returns nil
// on the first success, the failure itself when it is terminal, ctx.Err()
// when the context is canceled before or during a backoff sleep, and an
// ErrRetriesExhausted-wrapped failure once attempts run out.
func Do(ctx context.Context, p Policy, op func(context.Context) error) error {
	_, err := DoValue(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue is Do for operations that produce a result.
func DoValue[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	var zero T

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if !domain.Retryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		if err := sleep(ctx, jittered(p, p.DelayFor(attempt))); err != nil {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, lastErr)
}

// jittered applies +/-20% jitter when the policy asks for it.
func jittered(p Policy, d time.Duration) time.Duration {
	if !p.Jitter || d <= 0 {
		return d
	}
	j := 0.8 + 0.4*rand.Float64()
	return time.Duration(float64(d) * j)
}

// sleep blocks for d or until ctx is canceled, so a user abort is never
// delayed by a full backoff wait.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
