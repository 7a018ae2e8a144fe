package fsnap

import (
	"context"
	"path"
	"path/filepath"
	"sync"

	"github.com/electron-utils/fsnap/internal/fs"
)

// Snapshotter builds snapshots from glob patterns. It keeps no state between
// calls, so one instance may serve concurrent Create calls as long as its
// collaborators allow it.
type Snapshotter struct {
	matcher Matcher
	stater  Stater
	log     Logger
	workers int
}

// Option configures a Snapshotter.
type Option func(*Snapshotter)

// WithMatcher replaces the doublestar-backed matcher.
func WithMatcher(m Matcher) Option {
	return func(s *Snapshotter) { s.matcher = m }
}

// WithStater replaces the os.Stat-backed metadata provider.
func WithStater(st Stater) Option {
	return func(s *Snapshotter) { s.stater = st }
}

// WithLogger sets the logger used for skipped entries.
func WithLogger(l Logger) Option {
	return func(s *Snapshotter) { s.log = l }
}

// WithWorkers stats up to n paths concurrently. Values below 2 keep it serial.
func WithWorkers(n int) Option {
	return func(s *Snapshotter) { s.workers = n }
}

// NewSnapshotter returns a Snapshotter using the local filesystem unless
// overridden by opts.
func NewSnapshotter(opts ...Option) *Snapshotter {
	s := &Snapshotter{
		matcher: globMatcher{},
		stater:  osStater{fs: fs.New()},
		log:     nopLogger{},
		workers: 1,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var defaultSnapshotter = NewSnapshotter()

// Create snapshots the paths matched by patterns using the local filesystem.
func Create(patterns []string, opts MatchOptions) (*Snapshot, error) {
	return defaultSnapshotter.Create(context.Background(), patterns, opts)
}

// Tree returns the pattern matching everything below dir, excluding dir itself.
func Tree(dir string) string {
	return path.Join(filepath.ToSlash(dir), "**", "*")
}

// Create expands patterns, stats every match and returns the snapshot in
// enumeration order. Entries that vanish between expansion and stat are left
// out; any other stat failure aborts with a *MetadataError.
func (s *Snapshotter) Create(ctx context.Context, patterns []string, opts MatchOptions) (*Snapshot, error) {
	matched, err := s.matcher.Expand(patterns, opts)
	if err != nil {
		return nil, &PatternError{Patterns: append([]string(nil), patterns...), Err: err}
	}

	paths := normalize(matched)

	results, err := s.statAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	snap := newSnapshot(len(paths))
	for i, p := range paths {
		if results[i].ok {
			snap.add(p, results[i].meta)
		}
	}
	return snap, nil
}

// normalize cleans separators and drops repeated paths, keeping the first.
func normalize(matched []string) []string {
	seen := make(map[string]struct{}, len(matched))
	out := make([]string, 0, len(matched))
	for _, m := range matched {
		p := filepath.Clean(filepath.FromSlash(m))
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

type statResult struct {
	meta Metadata
	ok   bool
	err  error
}

func (s *Snapshotter) statAll(ctx context.Context, paths []string) ([]statResult, error) {
	results := make([]statResult, len(paths))

	if s.workers < 2 || len(paths) < 2 {
		for i, p := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = s.statOne(p)
			if results[i].err != nil {
				return nil, results[i].err
			}
		}
		return results, nil
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(s.workers, len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i] = s.statOne(paths[i])
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case idx <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(idx)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// earliest failure in enumeration order wins
	for i := range results {
		if results[i].err != nil {
			return nil, results[i].err
		}
	}
	return results, nil
}

func (s *Snapshotter) statOne(path string) statResult {
	m, err := s.stater.Stat(path)
	switch {
	case err == nil:
		return statResult{meta: m, ok: true}
	case fs.IsNotExist(err):
		s.log.Debug("entry vanished before stat", "path", path)
		return statResult{}
	default:
		return statResult{err: &MetadataError{Path: path, Err: err}}
	}
}
