package watcher

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/electron-utils/fsnap/internal/config"
	"github.com/electron-utils/fsnap/internal/logging"
	"github.com/electron-utils/fsnap/internal/mailbox"
	"github.com/electron-utils/fsnap/internal/worker"
)

func takeWithin(t *testing.T, mb *mailbox.Mailbox[worker.Job], d time.Duration) worker.Job {
	t.Helper()
	got := make(chan worker.Job, 1)
	go func() {
		if j, ok := mb.Take(); ok {
			got <- j
		}
	}()
	select {
	case j := <-got:
		return j
	case <-time.After(d):
		mb.Close()
		t.Fatalf("no job within %s", d)
		return worker.Job{}
	}
}

func run(t *testing.T, w *Watcher) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	return func() {
		stop()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Start() error = %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Start() did not return after cancel")
		}
	}
}

func TestPolling(t *testing.T) {
	mb := mailbox.New[worker.Job]()
	w := New(config.WatchConfig{Mode: "poll", PollInterval: 100 * time.Millisecond}, logging.Nop(), mb)
	cancel := run(t, w)
	defer cancel()

	if j := takeWithin(t, mb, time.Second); j.Reason != "initial" {
		t.Errorf("first job reason = %q, want initial", j.Reason)
	}
	j := takeWithin(t, mb, time.Second)
	if j.Reason != "poll" {
		t.Errorf("second job reason = %q, want poll", j.Reason)
	}
	if j.At.IsZero() {
		t.Error("job has no timestamp")
	}
}

func TestCron(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a cron tick")
	}
	mb := mailbox.New[worker.Job]()
	w := New(config.WatchConfig{Mode: "cron", Schedule: "@every 1s"}, logging.Nop(), mb)
	cancel := run(t, w)
	defer cancel()

	if j := takeWithin(t, mb, time.Second); j.Reason != "initial" {
		t.Errorf("first job reason = %q, want initial", j.Reason)
	}
	if j := takeWithin(t, mb, 3*time.Second); j.Reason != "cron" {
		t.Errorf("second job reason = %q, want cron", j.Reason)
	}
}

func TestStart_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.WatchConfig
	}{
		{"unknown mode", config.WatchConfig{Mode: "inotify"}},
		{"zero interval", config.WatchConfig{Mode: "poll"}},
		{"bad schedule", config.WatchConfig{Mode: "cron", Schedule: "whenever"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.cfg, logging.Nop(), mailbox.New[worker.Job]())
			if err := w.Start(context.Background()); err == nil {
				t.Error("Start() returned nil error")
			}
		})
	}
}

func TestUpdateConfig(t *testing.T) {
	mb := mailbox.New[worker.Job]()
	w := New(config.WatchConfig{Mode: "inotify"}, logging.Nop(), mb)
	w.UpdateConfig(config.WatchConfig{Mode: "poll", PollInterval: 10 * time.Millisecond})

	cancel := run(t, w)
	defer cancel()
	takeWithin(t, mb, time.Second)
}

func TestTrigger_Coalesced(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	mb := mailbox.New[worker.Job]()
	w := New(config.WatchConfig{Mode: "poll", PollInterval: time.Second}, logging.FromZap(zap.New(core)), mb)

	w.trigger("poll")
	w.trigger("poll")

	if n := logs.FilterMessage("snapshot triggered").Len(); n != 1 {
		t.Errorf("triggered entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("worker busy, trigger coalesced").Len(); n != 1 {
		t.Errorf("coalesced entries = %d, want 1", n)
	}
	if j, ok := mb.Take(); !ok || j.Reason != "poll" {
		t.Errorf("Take() = %+v, %v", j, ok)
	}
}
