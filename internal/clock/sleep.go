// Package clock provides context-aware time utilities.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d, or until ctx is canceled, in which case the
// context error is returned.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}
