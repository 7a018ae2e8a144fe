// Package glob expands glob patterns, including "**" segments, into
// filesystem paths using doublestar.
package glob

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls expansion. The zero value skips dot-files, like most
// shell globbers.
type Options struct {
	Dot            bool
	FilesOnly      bool
	NoFollow       bool
	FailOnIOErrors bool
	Ignore         []string
}

func (o Options) globOptions() []doublestar.GlobOption {
	var opts []doublestar.GlobOption
	if o.FilesOnly {
		opts = append(opts, doublestar.WithFilesOnly())
	}
	if o.NoFollow {
		opts = append(opts, doublestar.WithNoFollow())
	}
	if o.FailOnIOErrors {
		opts = append(opts, doublestar.WithFailOnIOErrors())
	}
	return opts
}

// Expand returns the matches of every pattern in pattern order. Matches of a
// single pattern are sorted lexically. A path matched by two patterns is
// returned twice.
func Expand(patterns []string, opts Options) ([]string, error) {
	for _, ig := range opts.Ignore {
		if !doublestar.ValidatePattern(filepath.ToSlash(ig)) {
			return nil, fmt.Errorf("ignore pattern %q: %w", ig, doublestar.ErrBadPattern)
		}
	}

	var out []string
	for _, pattern := range patterns {
		matches, err := expandOne(pattern, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

func expandOne(pattern string, opts Options) ([]string, error) {
	slashed := filepath.ToSlash(filepath.Clean(pattern))
	if !doublestar.ValidatePattern(slashed) {
		return nil, fmt.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, opts.globOptions()...)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	base, rest := doublestar.SplitPattern(slashed)
	// a pattern naming a dot segment itself opts into dot matches
	skipDot := !opts.Dot && !strings.HasPrefix(rest, ".") && !strings.Contains(rest, "/.")

	kept := matches[:0]
	for _, m := range matches {
		sm := filepath.ToSlash(m)
		if skipDot && hasDotSegment(sm, base) {
			continue
		}
		if ignored(sm, opts.Ignore) {
			continue
		}
		kept = append(kept, m)
	}
	sort.Strings(kept)
	return kept, nil
}

// hasDotSegment reports whether any segment of match below base starts with
// a dot. Segments that are part of base came from the pattern literally.
func hasDotSegment(match, base string) bool {
	rel := strings.TrimPrefix(match, "./")
	if base != "." && base != "" {
		rel = strings.TrimPrefix(strings.TrimPrefix(match, base), "/")
	}
	for _, seg := range strings.Split(rel, "/") {
		if len(seg) > 1 && seg[0] == '.' && seg != ".." {
			return true
		}
	}
	return false
}

func ignored(match string, ignore []string) bool {
	for _, ig := range ignore {
		if ok, _ := doublestar.Match(filepath.ToSlash(ig), match); ok {
			return true
		}
	}
	return false
}
