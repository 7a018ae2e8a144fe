package fsnap

import (
	"github.com/electron-utils/fsnap/internal/fs"
	"github.com/electron-utils/fsnap/internal/glob"
)

// MatchOptions is handed to the Matcher untouched.
type MatchOptions struct {
	Dot            bool     // match names starting with '.'
	FilesOnly      bool     // drop directories from the matches
	NoFollow       bool     // do not descend into symlinked directories
	FailOnIOErrors bool     // abort on unreadable directories instead of skipping them
	Ignore         []string // patterns whose matches are excluded
}

// Matcher expands glob patterns into paths. Overlapping matches across
// patterns may be returned more than once.
type Matcher interface {
	Expand(patterns []string, opts MatchOptions) ([]string, error)
}

// Stater returns metadata for a path. An entry that does not exist must be
// reported with an error satisfying errors.Is(err, fs.ErrNotExist).
type Stater interface {
	Stat(path string) (Metadata, error)
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(patterns []string, opts MatchOptions) ([]string, error)

func (f MatcherFunc) Expand(patterns []string, opts MatchOptions) ([]string, error) {
	return f(patterns, opts)
}

// StaterFunc adapts a function to Stater.
type StaterFunc func(path string) (Metadata, error)

func (f StaterFunc) Stat(path string) (Metadata, error) { return f(path) }

// Logger receives debug notes about skipped entries.
type Logger interface {
	Debug(msg string, kv ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

type globMatcher struct{}

func (globMatcher) Expand(patterns []string, opts MatchOptions) ([]string, error) {
	return glob.Expand(patterns, glob.Options{
		Dot:            opts.Dot,
		FilesOnly:      opts.FilesOnly,
		NoFollow:       opts.NoFollow,
		FailOnIOErrors: opts.FailOnIOErrors,
		Ignore:         opts.Ignore,
	})
}

type osStater struct {
	fs fs.FS
}

func (o osStater) Stat(path string) (Metadata, error) {
	fi, err := o.fs.Stat(path)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		IsDir:   fi.IsDir,
		IsFile:  fi.IsFile,
		ModTime: fi.MTime,
	}, nil
}
