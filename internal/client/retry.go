package client

import (
	"context"
	"time"
)

// retryPolicy retries an operation a bounded number of times with a fixed
// delay between attempts. Only errors accepted by the retryable predicate are
// retried; the last error is returned after exhaustion.
type retryPolicy struct {
	maxAttempts int
	delay       time.Duration
	retryable   func(error) bool
}

func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !p.retryable(lastErr) || attempt == p.maxAttempts {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(p.delay):
		}
	}
	return lastErr
}
