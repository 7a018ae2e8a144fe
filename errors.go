package fsnap

import (
	"fmt"
	"strings"
)

// MetadataError reports a stat failure other than the entry having vanished.
// It aborts the snapshot it occurred in.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("fsnap: stat %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// PatternError reports a failure of the path matcher.
type PatternError struct {
	Patterns []string
	Err      error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("fsnap: expand %s: %v", strings.Join(e.Patterns, ", "), e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
