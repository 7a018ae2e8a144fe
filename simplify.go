package fsnap

import (
	"path/filepath"
	"sort"
)

// Simplify returns a copy of d where every sequence is sorted and no entry is
// a descendant of another entry in the same sequence. Sequences are collapsed
// independently: a deleted directory does not hide a created descendant.
func Simplify(d Delta) Delta {
	return Delta{
		Deletes: collapse(d.Deletes),
		Creates: collapse(d.Creates),
		Changes: collapse(d.Changes),
	}
}

// collapse sorts paths lexically and keeps only the entries with no kept
// ancestor. Ancestors sort before their descendants, so every ancestor is
// decided by the time its descendants are visited.
func collapse(paths []string) []string {
	sorted := append([]string{}, paths...)
	sort.Strings(sorted)

	kept := make(map[string]struct{}, len(sorted))
	out := sorted[:0]
	for _, p := range sorted {
		if hasKeptAncestor(p, kept) {
			continue
		}
		kept[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// hasKeptAncestor probes every proper prefix of p that ends at a separator,
// with and without the separator, so roots like "/" and "C:\" match too.
func hasKeptAncestor(p string, kept map[string]struct{}) bool {
	for i := 0; i < len(p); i++ {
		if !isSeparator(p[i]) {
			continue
		}
		if i > 0 {
			if _, ok := kept[p[:i]]; ok {
				return true
			}
		}
		if i+1 < len(p) {
			if _, ok := kept[p[:i+1]]; ok {
				return true
			}
		}
	}
	return false
}

// IsDescendant reports whether child lies strictly below parent.
func IsDescendant(parent, child string) bool {
	if len(child) <= len(parent) || child[:len(parent)] != parent {
		return false
	}
	if parent != "" && isSeparator(parent[len(parent)-1]) {
		return true
	}
	return parent != "" && isSeparator(child[len(parent)])
}

func isSeparator(c byte) bool {
	return c == '/' || c == filepath.Separator
}
