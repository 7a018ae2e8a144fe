package watcher

import (
	"github.com/electron-utils/fsnap/internal/config"
)

// UpdateConfig updates watcher fields for hot-reload. Changes apply the next
// time Start is called.
func (w *Watcher) UpdateConfig(cfg config.WatchConfig) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.mode = cfg.Mode
	w.interval = cfg.PollInterval
	w.schedule = cfg.Schedule
}
