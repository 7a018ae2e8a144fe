package fsnap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixtureFiles = []string{
	"bar/bar-01/foobar.js",
	"bar/bar-02/foobar.js",
	"bar/bar-03/foobar.js",
	"bar/foobar.js",
	"foo/foo-01/foobar.js",
	"foo/foo-02/foobar.js",
	"foo/foo-03/foobar.js",
	"foo/foobar.js",
	"foo-bar/foo-01.js",
	"foo-bar/foo-02.js",
	"foo-bar/foo-03.js",
	"foo-bar.meta",
	"foobar.js",
	"foobar.js.meta",
}

// newFixture lays out the test tree under a temp dir and returns its root.
func newFixture(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "test-data")
	for _, f := range fixtureFiles {
		writeFile(t, filepath.Join(root, filepath.FromSlash(f)), f)
	}
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// touch moves the modification time of path one hour forward.
func touch(t *testing.T, path string) {
	t.Helper()
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	later := st.ModTime().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func mustMove(t *testing.T, from, to string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(to), err)
	}
	if err := os.Rename(from, to); err != nil {
		t.Fatalf("rename %s -> %s: %v", from, to, err)
	}
}

func mustRemove(t *testing.T, path string) {
	t.Helper()
	if err := os.RemoveAll(path); err != nil {
		t.Fatalf("remove %s: %v", path, err)
	}
}

func snap(t *testing.T, patterns ...string) *Snapshot {
	t.Helper()
	s, err := Create(patterns, MatchOptions{})
	if err != nil {
		t.Fatalf("Create(%v) error = %v", patterns, err)
	}
	return s
}

// under joins slash-separated names onto root.
func under(root string, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, filepath.Join(root, filepath.FromSlash(n)))
	}
	return out
}

// stripRoot makes paths relative to root with forward slashes.
func stripRoot(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	prefix := root + string(filepath.Separator)
	for _, p := range paths {
		out = append(out, filepath.ToSlash(strings.TrimPrefix(p, prefix)))
	}
	return out
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func file(path string, mod time.Time) Entry {
	return Entry{Path: path, Meta: Metadata{IsFile: true, ModTime: mod}}
}

func dir(path string) Entry {
	return Entry{Path: path, Meta: Metadata{IsDir: true, ModTime: t0}}
}
