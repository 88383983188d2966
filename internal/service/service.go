package service

import (
	"context"
	"time"
)

// wait blocks for the configured upstream latency, aborting early when the
// request context is cancelled so an abandoned request never commits late.
func wait(ctx context.Context, d time.Duration) error {
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
