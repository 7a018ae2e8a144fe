package report

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/electron-utils/fsnap/internal/config"
	"github.com/electron-utils/fsnap/internal/fs"
	"github.com/electron-utils/fsnap/internal/logging"
	"github.com/electron-utils/fsnap/internal/retention"
)

// Writer stores each report as a file in the report directory and prunes
// old ones afterwards.
type Writer struct {
	mu        sync.RWMutex
	cfg       config.ReportConfig
	fs        fs.FS
	retention *retention.Engine
	log       logging.Logger
}

// NewWriter creates a report writer. A nil filesystem means the local one.
func NewWriter(cfg config.ReportConfig, log logging.Logger, filesystem fs.FS) *Writer {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Writer{
		cfg:       cfg,
		fs:        filesystem,
		retention: retention.New(cfg.Keep, filesystem, log),
		log:       log,
	}
}

// UpdateConfig hot-reloads report settings. An empty dir keeps the current
// one; a Writer never falls back to the working directory.
func (w *Writer) UpdateConfig(cfg config.ReportConfig) {
	w.mu.Lock()
	if cfg.Dir == "" {
		w.log.Warn("report.dir cleared on reload, restart to disable report files", "dir", w.cfg.Dir)
		cfg.Dir = w.cfg.Dir
	}
	w.cfg = cfg
	w.mu.Unlock()
	w.retention.UpdateConfig(cfg.Keep)
}

// Publish writes r atomically and applies retention. Retention failures are
// logged, not returned.
func (w *Writer) Publish(ctx context.Context, r Report) error {
	w.mu.RLock()
	cfg := w.cfg
	w.mu.RUnlock()

	data, err := Encode(r, cfg.Format)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Dir, retention.FileName(r.Taken, cfg.Format))
	if err := w.fs.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	w.log.Info("report written", "path", path, "id", r.ID, "entries", r.Len())

	if err := w.retention.Apply(ctx, cfg.Dir); err != nil {
		w.log.Error("report: retention failed", "error", err)
	}
	return nil
}

// Log publishes reports as log entries.
type Log struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *Log {
	return &Log{log: log}
}

func (l *Log) Publish(_ context.Context, r Report) error {
	l.log.Info("delta",
		"id", r.ID,
		"reason", r.Reason,
		"deletes", len(r.Deletes),
		"creates", len(r.Creates),
		"changes", len(r.Changes),
	)
	for _, p := range r.Deletes {
		l.log.Debug("deleted", "path", p)
	}
	for _, p := range r.Creates {
		l.log.Debug("created", "path", p)
	}
	for _, p := range r.Changes {
		l.log.Debug("changed", "path", p)
	}
	return nil
}

// Multi publishes to every publisher in turn and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, r Report) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
