// Package retention prunes old delta reports from the report directory.
package retention

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/electron-utils/fsnap/internal/fs"
	"github.com/electron-utils/fsnap/internal/logging"
)

const (
	prefix     = "delta-"
	timeLayout = "2006-01-02T15-04-05.000000"
)

// FileName returns the report file name for a delta taken at t.
func FileName(t time.Time, ext string) string {
	return prefix + t.UTC().Format(timeLayout) + "." + ext
}

type Engine struct {
	mu   sync.RWMutex
	keep int
	fs   fs.FS
	log  logging.Logger
}

// New returns an engine keeping the newest keep reports; keep <= 0 keeps all.
func New(keep int, filesystem fs.FS, log logging.Logger) *Engine {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Engine{keep: keep, fs: filesystem, log: log}
}

func (e *Engine) UpdateConfig(keep int) {
	e.mu.Lock()
	e.keep = keep
	e.mu.Unlock()
}

// reportFile is one report found on disk.
type reportFile struct {
	Timestamp time.Time
	Path      string
}

// Apply removes all but the newest reports in dir. Files that do not follow
// the report naming scheme are left alone.
func (e *Engine) Apply(ctx context.Context, dir string) error {
	e.mu.RLock()
	keep := e.keep
	e.mu.RUnlock()

	if keep <= 0 {
		return nil
	}

	files, err := e.scan(dir)
	if err != nil {
		return err
	}
	if len(files) <= keep {
		return nil
	}

	// Sort newest → oldest
	sort.Slice(files, func(i, j int) bool {
		return files[i].Timestamp.After(files[j].Timestamp)
	})

	for _, f := range files[keep:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.fs.Remove(f.Path); err != nil && !fs.IsNotExist(err) {
			e.log.Error("retention: remove failed", "path", f.Path, "error", err)
			continue
		}
		e.log.Debug("retention: removed report", "path", f.Path)
	}
	return nil
}

func (e *Engine) scan(dir string) ([]reportFile, error) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading report dir: %w", err)
	}

	var files []reportFile
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		ts := extractTimestamp(name, prefix)
		if ts == "" {
			continue
		}
		t, err := time.Parse(timeLayout, ts)
		if err != nil {
			continue
		}
		files = append(files, reportFile{Timestamp: t, Path: filepath.Join(dir, name)})
	}
	return files, nil
}

// extractTimestamp removes the prefix and the extension and returns the
// timestamp string, or "" when name is not a report.
func extractTimestamp(name, prefix string) string {
	if !strings.HasPrefix(name, prefix) {
		return ""
	}
	core := strings.TrimPrefix(name, prefix)
	dot := strings.LastIndexByte(core, '.')
	if dot <= 0 {
		return ""
	}
	switch core[dot+1:] {
	case "json", "yaml":
		return core[:dot]
	}
	return ""
}
