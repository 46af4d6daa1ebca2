// Package retry provides a bounded, fixed-delay retry policy for wrapping
// fallible operations such as remote API calls.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolism/meditation-api-backend/internal/redact"
)

// Defaults applied by New when given non-positive values.
const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 5 * time.Second
)

// Operation is a fallible unit of work governed by a Policy.
type Operation func(ctx context.Context) error

// Policy executes operations with a fixed number of attempts and a fixed
// pause between them. There is no jitter and no backoff: every pause is
// exactly Delay. An operation either fully succeeds on some attempt or the
// last error is returned after the final attempt.
type Policy struct {
	// MaxAttempts is the total number of invocations. Values below one still
	// invoke the operation once.
	MaxAttempts int

	// Delay is the fixed pause between consecutive attempts. Exactly
	// MaxAttempts-1 pauses occur for a permanently failing operation; there
	// is no trailing pause after the final failure.
	Delay time.Duration

	logger *slog.Logger

	// sleep waits between attempts. Overridable in tests to count pauses
	// without slowing the suite down.
	sleep func(ctx context.Context, d time.Duration) error
}

// New builds a Policy with the given bounds, substituting defaults for
// non-positive values: configuration surfaces retry counts as "unset or
// explicit", so a non-positive maxAttempts here means unset and selects
// DefaultMaxAttempts. A Policy constructed directly with MaxAttempts < 1
// bypasses this substitution and Execute runs the operation exactly once.
// The logger records each failed attempt.
func New(maxAttempts int, delay time.Duration, logger *slog.Logger) *Policy {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{
		MaxAttempts: maxAttempts,
		Delay:       delay,
		logger:      logger,
		sleep:       sleepCtx,
	}
}

// Execute runs op until it succeeds or MaxAttempts invocations have failed,
// pausing Delay between attempts. The pause waits on the context rather than
// blocking unconditionally; cancellation during a pause aborts the remaining
// attempts and returns the context's error.
func (p *Policy) Execute(ctx context.Context, op Operation) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	logger := p.logger
	if logger == nil {
		logger = slog.Default()
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == attempts {
			logger.ErrorContext(ctx, "final error after retries exhausted",
				"attempts", attempts,
				"error", redact.Error(lastErr))
			break
		}

		// Remote-API errors can echo the request URL, key included; never
		// log them raw.
		logger.WarnContext(ctx, "operation failed, retrying after delay",
			"attempt", attempt,
			"max_attempts", attempts,
			"delay", p.Delay,
			"error", redact.Error(lastErr))

		if err := sleep(ctx, p.Delay); err != nil {
			logger.WarnContext(ctx, "retry delay cancelled",
				"attempt", attempt,
				"error", err)
			return err
		}
	}

	return lastErr
}

// sleepCtx pauses for d or until the context is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
