package config

import (
	"fmt"
	"strings"

	"github.com/r3labs/diff"
)

// Changes lists the fields that differ between two configurations, one
// "<type> <path>: <from> -> <to>" line each.
func Changes(old, updated *Config) ([]string, error) {
	changelog, err := diff.Diff(*old, *updated)
	if err != nil {
		return nil, fmt.Errorf("diffing config: %w", err)
	}

	out := make([]string, 0, len(changelog))
	for _, c := range changelog {
		out = append(out, fmt.Sprintf("%s %s: %v -> %v", c.Type, strings.Join(c.Path, "."), c.From, c.To))
	}
	return out, nil
}
