// Package fsnap takes point-in-time snapshots of filesystem subtrees matched by
// glob patterns and computes what changed between two of them.
//
// A typical cycle:
//
//	before, err := fsnap.Create([]string{fsnap.Tree("src")}, fsnap.MatchOptions{})
//	...
//	after, err := fsnap.Create([]string{fsnap.Tree("src")}, fsnap.MatchOptions{})
//	delta := fsnap.Simplify(fsnap.Diff(before, after))
//
// Diff reports deletes, creates and changes. Only files whose modification time
// moved count as changes; a path that flips between file and directory is
// reported as both deleted and created. Simplify collapses every sequence so a
// reported directory hides its descendants in that same sequence.
package fsnap
