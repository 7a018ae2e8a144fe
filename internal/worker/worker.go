// Package worker takes snapshots on request, diffs them against the previous
// one and publishes the resulting deltas.
package worker

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/electron-utils/fsnap"
	"github.com/electron-utils/fsnap/internal/config"
	"github.com/electron-utils/fsnap/internal/logging"
	"github.com/electron-utils/fsnap/internal/mailbox"
	"github.com/electron-utils/fsnap/internal/report"
)

// Worker keeps the last snapshot as baseline for the next diff.
type Worker struct {
	mu        sync.RWMutex
	cfg       config.Config
	snap      *fsnap.Snapshotter
	log       logging.Logger
	mb        *mailbox.Mailbox[Job]
	publisher report.Publisher

	prev *fsnap.Snapshot
	gen  uint64 // bumped on every baseline reset
	now  func() time.Time
}

// New creates a worker. A nil snapshotter means one built from cfg.
func New(cfg config.Config, snap *fsnap.Snapshotter, log logging.Logger, mb *mailbox.Mailbox[Job], publisher report.Publisher) *Worker {
	log.Debug("creating worker")
	if snap == nil {
		snap = fsnap.NewSnapshotter(
			fsnap.WithLogger(log),
			fsnap.WithWorkers(cfg.Snapshot.Workers),
		)
	}
	return &Worker{
		cfg:       cfg,
		snap:      snap,
		log:       log,
		mb:        mb,
		publisher: publisher,
		now:       time.Now,
	}
}

// Start runs the worker loop using mailbox semantics. It returns when ctx is
// done or the mailbox is closed.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info("starting worker")
	for {
		job, ok := w.mb.Take()
		if !ok || ctx.Err() != nil {
			w.log.Info("worker stopped")
			return
		}
		if err := w.Handle(ctx, job); err != nil {
			w.log.Error("worker: snapshot failed", "reason", job.Reason, "error", err)
		}
	}
}

// Handle takes a snapshot. The first successful one only becomes the
// baseline; later ones are diffed against it and published when something
// changed. On failure the previous baseline is kept. A snapshot that
// outlived a baseline reset is discarded.
func (w *Worker) Handle(ctx context.Context, job Job) error {
	w.mu.RLock()
	cfg := w.cfg
	prev := w.prev
	gen := w.gen
	w.mu.RUnlock()

	patterns := cfg.Snapshot.AllPatterns()
	next, err := w.snap.Create(ctx, patterns, cfg.Snapshot.MatchOptions())
	if err != nil {
		return err
	}
	w.log.Debug("snapshot taken", "reason", job.Reason, "entries", next.Len())

	w.mu.Lock()
	if w.gen != gen {
		w.mu.Unlock()
		w.log.Debug("snapshot discarded, scope changed while it ran", "reason", job.Reason)
		return nil
	}
	w.prev = next
	w.mu.Unlock()

	if prev == nil {
		w.log.Info("baseline recorded", "entries", next.Len())
		return nil
	}

	delta := fsnap.Diff(prev, next)
	if !cfg.Watch.Raw {
		delta = fsnap.Simplify(delta)
	}
	if delta.Empty() && !cfg.Report.IncludeEmpty {
		return nil
	}

	taken := job.At
	if taken.IsZero() {
		taken = w.now()
	}
	r := report.New(delta, taken, job.Reason, patterns, !cfg.Watch.Raw)
	return w.publisher.Publish(ctx, r)
}

// UpdateConfig hot-reloads settings. A changed pattern set or match options
// drop the baseline. The worker count only applies to a new Worker.
func (w *Worker) UpdateConfig(cfg config.Config) {
	w.log.Debug("entering Worker.UpdateConfig()")
	w.mu.Lock()
	defer w.mu.Unlock()

	old := w.cfg.Snapshot
	if !slices.Equal(old.AllPatterns(), cfg.Snapshot.AllPatterns()) ||
		!slices.Equal(old.Ignore, cfg.Snapshot.Ignore) ||
		old.Dot != cfg.Snapshot.Dot ||
		old.FilesOnly != cfg.Snapshot.FilesOnly ||
		old.NoFollow != cfg.Snapshot.NoFollow ||
		old.FailOnIOErrors != cfg.Snapshot.FailOnIOErrors {
		w.log.Info("snapshot scope changed, baseline reset")
		w.prev = nil
		w.gen++
	}
	w.cfg = cfg
}
