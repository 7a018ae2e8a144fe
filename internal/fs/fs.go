// Package fs defines the filesystem abstraction used by fsnap.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"os"
	"time"
)

type FileInfo struct {
	Path   string
	Size   int64
	MTime  time.Time
	IsDir  bool
	IsFile bool
}

type FS interface {
	Stat(path string) (FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	WriteFile(ctx context.Context, path string, data []byte) error // atomic
	Remove(path string) error
}
