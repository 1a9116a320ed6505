// Package retry wraps flaky upstream calls with bounded exponential backoff.
//
// Errors are classified as retryable (connection failures, timeouts, HTTP 5xx,
// HTTP 429) or fatal (everything else). Rate-limit responses carrying a
// Retry-After value override the computed delay for that one wait. When all
// attempts are exhausted the error from the final attempt is returned as-is so
// callers can still discriminate on its type.
package retry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Policy describes retry behavior. The zero value is not usable; start from
// DefaultPolicy or PolicyFromEnv and override fields as needed. A Policy is
// immutable configuration: build it once and reuse it across calls.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// IsRetryable classifies errors. Nil means Retryable.
	IsRetryable func(error) bool

	// Logger receives a warning before every backoff sleep. Nil means slog.Default.
	Logger *slog.Logger
}

// DefaultPolicy returns the standard policy: 3 attempts, 1s initial delay,
// 4s cap, x2 backoff.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     4 * time.Second,
		Multiplier:   2,
	}
}

// Delay returns the backoff delay applied after the given failed attempt
// (1-based): clamp(initial * multiplier^(attempt-1), initial, max).
func (p Policy) Delay(attempt int) time.Duration {
	d := float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt-1))
	if d > float64(p.MaxDelay) {
		d = float64(p.MaxDelay)
	}
	if d < float64(p.InitialDelay) {
		d = float64(p.InitialDelay)
	}
	return time.Duration(d)
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.InitialDelay > p.MaxDelay {
		p.MaxDelay = p.InitialDelay
	}
	if p.Multiplier <= 0 {
		p.Multiplier = 1
	}
	if p.IsRetryable == nil {
		p.IsRetryable = Retryable
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return p
}

// Do runs fn under the policy, sleeping on the calling goroutine between
// attempts. The error from the final attempt is returned unwrapped.
func Do(p Policy, fn func() error) error {
	return run(p, fn, func(d time.Duration) error {
		time.Sleep(d)
		return nil
	})
}

// DoContext is the suspendable form of Do: backoff waits select on the
// context so a cancelled caller is released mid-wait. Attempt and delay
// schedules are identical to Do. An attempt that has started always runs to
// completion; the context is only consulted between attempts.
func DoContext(ctx context.Context, p Policy, fn func(context.Context) error) error {
	return run(p, func() error { return fn(ctx) }, func(d time.Duration) error {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

// DoValue runs fn under the policy and returns its result.
func DoValue[T any](p Policy, fn func() (T, error)) (T, error) {
	var out T
	err := Do(p, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

// DoValueContext is the suspendable form of DoValue.
func DoValueContext[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := DoContext(ctx, p, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

func run(p Policy, attempt func() error, wait func(time.Duration) error) error {
	p = p.normalized()

	for n := 1; ; n++ {
		err := attempt()
		if err == nil {
			return nil
		}
		if n >= p.MaxAttempts || !p.IsRetryable(err) {
			return err
		}

		delay := p.Delay(n)
		if hint, ok := waitHint(err); ok {
			delay = hint
		}
		p.Logger.Warn("retrying after error",
			"attempt", n,
			"max_attempts", p.MaxAttempts,
			"delay", delay,
			"error", err)
		if werr := wait(delay); werr != nil {
			return werr
		}
	}
}

// waitHinter is implemented by errors that carry an upstream-suggested
// wait duration (e.g. a 429 with a Retry-After header).
type waitHinter interface {
	RetryAfterHint() (time.Duration, bool)
}

func waitHint(err error) (time.Duration, bool) {
	var h waitHinter
	if errors.As(err, &h) {
		return h.RetryAfterHint()
	}
	return 0, false
}

// Retryable is the default classifier.
//
// Connection failures and timeouts are always retryable. StatusError is
// retryable for 5xx and 429 only; other 4xx codes will not change on retry.
// Unknown error types are fatal.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= http.StatusInternalServerError ||
			se.StatusCode == http.StatusTooManyRequests
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	return false
}
