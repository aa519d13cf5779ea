package dynamodbcopy

import (
	"context"
	"time"
)

// Sleeper abstracts out sleep side effects to allow better testing
type Sleeper func(ctx context.Context, d time.Duration) error

// ContextSleeper waits for d, returning early with the context error when ctx is done
func ContextSleeper(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
