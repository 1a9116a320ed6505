package retry

import (
	"fmt"
	"strconv"
	"time"
)

// StatusError is a structured HTTP failure from an upstream API.
// RetryAfter holds the raw Retry-After header value, if any.
type StatusError struct {
	StatusCode int
	Body       string
	RetryAfter string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// RetryAfterHint parses RetryAfter as a plain number of seconds. HTTP-date
// values are not supported; they fall back to the computed backoff.
func (e *StatusError) RetryAfterHint() (time.Duration, bool) {
	if e.RetryAfter == "" {
		return 0, false
	}
	secs, err := strconv.ParseFloat(e.RetryAfter, 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}
