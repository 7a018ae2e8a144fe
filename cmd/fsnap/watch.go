package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/electron-utils/fsnap/internal/config"
	"github.com/electron-utils/fsnap/internal/logging"
	"github.com/electron-utils/fsnap/internal/mailbox"
	"github.com/electron-utils/fsnap/internal/report"
	"github.com/electron-utils/fsnap/internal/watcher"
	"github.com/electron-utils/fsnap/internal/worker"
)

// watchCmd runs the long-lived snapshot loop described by a config file.
func watchCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Snapshot on a schedule and publish every delta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return watch(cmd.Context(), cfgPath)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "Path to the YAML config")
	return cmd
}

func watch(parent context.Context, cfgPath string) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Load config
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logger
	logg, err := newLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer logg.Sync()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
			logg.Info("shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Mailbox for snapshot jobs
	mb := mailbox.New[worker.Job]()

	var writer *report.Writer
	publishers := report.Multi{report.NewLog(logg)}
	if cfg.Report.Dir != "" {
		writer = report.NewWriter(cfg.Report, logg, nil)
		publishers = append(publishers, writer)
	}

	// Worker (snapshot + diff + publish)
	w := worker.New(*cfg, nil, logg.With("component", "worker"), mb, publishers)

	// Watcher (decides when a snapshot is due)
	watch := watcher.New(cfg.Watch, logg.With("component", "watcher"), mb)

	workerDone := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(workerDone)
	}()

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- watch.Start(ctx)
	}()

	if cfg.ConfigReload.Enabled {
		go reloadOnHangup(ctx, cfgPath, cfg, logg, w, watch, writer, mb)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-watchErr:
		if runErr != nil {
			runErr = fmt.Errorf("watcher: %w", runErr)
		}
	}
	cancel()
	if j := mb.TryTake(); j != nil {
		logg.Debug("dropping pending trigger", "reason", j.Reason)
	}
	mb.Close()
	<-workerDone
	logg.Info("exit complete")
	return runErr
}

// reloadOnHangup re-reads the config on SIGHUP and applies it. Watch mode
// changes only take effect after a restart.
func reloadOnHangup(ctx context.Context, cfgPath string, current *config.Config, logg logging.Logger,
	w *worker.Worker, watch *watcher.Watcher, writer *report.Writer, mb *mailbox.Mailbox[worker.Job]) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigCh:
		}

		newCfg, err := config.Load(cfgPath)
		if err != nil {
			logg.Error("config reload failed", "error", err)
			continue
		}

		changes, err := config.Changes(current, newCfg)
		if err != nil {
			logg.Warn("config diff failed", "error", err)
		}
		if len(changes) == 0 && err == nil {
			logg.Info("config unchanged")
			continue
		}
		for _, c := range changes {
			logg.Info("config change", "change", c)
		}

		// Apply updates
		w.UpdateConfig(*newCfg)
		watch.UpdateConfig(newCfg.Watch)
		if writer != nil {
			writer.UpdateConfig(newCfg.Report)
		} else if newCfg.Report.Dir != "" {
			logg.Warn("report.dir set on reload, restart to enable report files")
		}
		current = newCfg

		mb.Put(worker.Job{Reason: "reload"})
		logg.Info("config reloaded")
	}
}
