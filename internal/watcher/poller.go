package watcher

import (
	"context"
	"fmt"
	"time"
)

// StartPolling triggers a snapshot on a fixed interval.
func (w *Watcher) StartPolling(ctx context.Context) error {
	w.mu.RLock()
	interval := w.interval
	w.mu.RUnlock()

	if interval <= 0 {
		return fmt.Errorf("poll interval %s must be positive", interval)
	}

	w.log.Info("polling", "interval", interval)
	w.trigger("initial")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.trigger("poll")
		}
	}
}
