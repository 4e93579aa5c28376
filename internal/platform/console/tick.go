package console

import (
	"context"
	"time"
)

// FrameSleep returns how long to sleep after a frame that took elapsed, so
// frames start one budget apart. A frame that overran gets no sleep.
func FrameSleep(budget, elapsed time.Duration) time.Duration {
	if elapsed >= budget {
		return 0
	}
	return budget - elapsed
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
