package glob

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if strings.HasSuffix(f, "/") {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte(f), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("rel %s: %v", p, err)
		}
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestExpand_RecursiveLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"foo/foobar.js",
		"foo-bar/foo-01.js",
		"foo-bar.meta",
		"bar/bar-01/foobar.js",
		"bar/foobar.js",
		"foobar.js",
	)

	got, err := Expand([]string{filepath.ToSlash(root) + "/**/*"}, Options{})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	want := []string{
		"bar",
		"bar/bar-01",
		"bar/bar-01/foobar.js",
		"bar/foobar.js",
		"foo",
		"foo-bar",
		"foo-bar.meta",
		"foo-bar/foo-01.js",
		"foo/foobar.js",
		"foobar.js",
	}
	if r := rel(t, root, got); !reflect.DeepEqual(r, want) {
		t.Errorf("Expand() = %v, want %v", r, want)
	}
}

func TestExpand_OverlappingPatternsKeepDuplicates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "bar/a.js", "bar/b.js")

	base := filepath.ToSlash(root)
	got, err := Expand([]string{base + "/bar/*", base + "/bar/**/*.js"}, Options{})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	want := []string{"bar/a.js", "bar/b.js", "bar/a.js", "bar/b.js"}
	if r := rel(t, root, got); !reflect.DeepEqual(r, want) {
		t.Errorf("Expand() = %v, want %v", r, want)
	}
}

func TestExpand_Options(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		".git/config",
		".env",
		"src/.cache/x.js",
		"src/main.js",
		"vendor/lib.js",
	)
	base := filepath.ToSlash(root)

	tests := []struct {
		name     string
		patterns []string
		opts     Options
		want     []string
	}{
		{
			name:     "dot files hidden by default",
			patterns: []string{base + "/**/*"},
			want:     []string{"src", "src/main.js", "vendor", "vendor/lib.js"},
		},
		{
			name:     "dot files included",
			patterns: []string{base + "/**/*"},
			opts:     Options{Dot: true},
			want: []string{
				".env", ".git", ".git/config",
				"src", "src/.cache", "src/.cache/x.js", "src/main.js",
				"vendor", "vendor/lib.js",
			},
		},
		{
			name:     "explicit dot segment in pattern",
			patterns: []string{base + "/.git/*"},
			want:     []string{".git/config"},
		},
		{
			name:     "files only",
			patterns: []string{base + "/**/*"},
			opts:     Options{FilesOnly: true},
			want:     []string{"src/main.js", "vendor/lib.js"},
		},
		{
			name:     "ignore",
			patterns: []string{base + "/**/*.js"},
			opts:     Options{Ignore: []string{base + "/vendor/**"}},
			want:     []string{"src/main.js"},
		},
		{
			name:     "missing base matches nothing",
			patterns: []string{base + "/nope/**/*"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.patterns, tt.opts)
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			if r := rel(t, root, got); !reflect.DeepEqual(r, tt.want) {
				t.Errorf("Expand() = %v, want %v", r, tt.want)
			}
		})
	}
}

func TestExpand_BadPattern(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		opts     Options
	}{
		{"pattern", []string{"src/[a"}, Options{}},
		{"ignore", []string{"src/*"}, Options{Ignore: []string{"[z"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.patterns, tt.opts)
			if !errors.Is(err, doublestar.ErrBadPattern) {
				t.Errorf("Expand() error = %v, want ErrBadPattern", err)
			}
		})
	}
}

func TestHasDotSegment(t *testing.T) {
	tests := []struct {
		match, base string
		want        bool
	}{
		{"/a/.b/c", "/a", true},
		{"/a/b/c", "/a", false},
		{"/.home/b", "/.home", false},
		{"x/.y", ".", true},
		{"./x/y", ".", false},
		{"x/../y", ".", false},
	}

	for _, tt := range tests {
		if got := hasDotSegment(tt.match, tt.base); got != tt.want {
			t.Errorf("hasDotSegment(%q, %q) = %v, want %v", tt.match, tt.base, got, tt.want)
		}
	}
}
