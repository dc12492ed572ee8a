// Package clock holds small time helpers used by the scan retry loop.
package clock

import (
	"context"
	"time"
)

// SleepWithContext pauses for the duration, returning the context error if it
// is canceled first.
func SleepWithContext(ctx context.Context, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
