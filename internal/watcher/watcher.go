// Package watcher decides when a snapshot is due and posts jobs to the worker.
package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/electron-utils/fsnap/internal/config"
	"github.com/electron-utils/fsnap/internal/logging"
	"github.com/electron-utils/fsnap/internal/mailbox"
	"github.com/electron-utils/fsnap/internal/worker"
)

// Watcher triggers snapshots on a fixed interval or a cron schedule.
type Watcher struct {
	mu sync.RWMutex

	mode     string
	interval time.Duration
	schedule string

	log logging.Logger

	mb *mailbox.Mailbox[worker.Job]
}

// New creates a watcher from the watch configuration.
func New(cfg config.WatchConfig, log logging.Logger, mb *mailbox.Mailbox[worker.Job]) *Watcher {
	return &Watcher{
		mode:     cfg.Mode,
		interval: cfg.PollInterval,
		schedule: cfg.Schedule,
		log:      log,
		mb:       mb,
	}
}

// Start posts an initial job, then one per tick of the configured mode until
// ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.RLock()
	mode := w.mode
	w.mu.RUnlock()

	switch mode {
	case "poll":
		return w.StartPolling(ctx)

	case "cron":
		return w.StartCron(ctx)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// trigger posts a job. A job still pending in the mailbox is replaced.
func (w *Watcher) trigger(reason string) {
	if w.mb.HasJob() {
		w.log.Debug("worker busy, trigger coalesced", "reason", reason)
	} else {
		w.log.Debug("snapshot triggered", "reason", reason)
	}
	w.mb.Put(worker.Job{Reason: reason, At: time.Now()})
}
