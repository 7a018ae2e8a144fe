package watcher

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// StartCron triggers a snapshot whenever the cron schedule fires.
func (w *Watcher) StartCron(ctx context.Context) error {
	w.mu.RLock()
	schedule := w.schedule
	w.mu.RUnlock()

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { w.trigger("cron") }); err != nil {
		return fmt.Errorf("cron schedule %q: %w", schedule, err)
	}

	w.log.Info("cron schedule active", "schedule", schedule)
	w.trigger("initial")

	c.Start()
	<-ctx.Done()
	// wait for a running trigger to return
	<-c.Stop().Done()
	return nil
}
