package workflow

import (
	"context"
	"time"
)

// withRetry re-runs fn after backoff while it keeps failing with a
// retryable store conflict. Every engine operation re-reads its state at
// the top of the transaction, so retries are safe.
func withRetry(ctx context.Context, attempts int, backoff time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !retryable(err) {
			return err
		}

		select {
		case <-time.After(backoff * time.Duration(i+1)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
