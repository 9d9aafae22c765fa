// Package countdown delivers the periodic timer events that drive rounds.
package countdown

import (
	"context"
	"time"
)

// Interval is the production tick period.
const Interval = time.Second

// Run calls tick once per interval until ctx is done.
// tick runs on the calling goroutine and must not block for long.
func Run(ctx context.Context, interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = Interval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			tick()
		}
	}
}

// Channel runs a ticker in a new goroutine and returns a channel that
// receives one value per interval. Ticks are dropped while the receiver
// is busy. The channel is closed when ctx is done.
func Channel(ctx context.Context, interval time.Duration) <-chan struct{} {
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		Run(ctx, interval, func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		})
	}()
	return ch
}
