// Package report turns deltas into published artifacts: report files on
// disk, log entries and plain-text listings.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/electron-utils/fsnap"
)

// Report is one published delta.
type Report struct {
	ID         string    `json:"id" yaml:"id"`
	Taken      time.Time `json:"taken" yaml:"taken"`
	Reason     string    `json:"reason" yaml:"reason"`
	Patterns   []string  `json:"patterns" yaml:"patterns"`
	Simplified bool      `json:"simplified" yaml:"simplified"`

	fsnap.Delta `yaml:",inline"`
}

// New stamps a delta with a fresh id.
func New(d fsnap.Delta, taken time.Time, reason string, patterns []string, simplified bool) Report {
	return Report{
		ID:         uuid.NewString(),
		Taken:      taken,
		Reason:     reason,
		Patterns:   append([]string(nil), patterns...),
		Simplified: simplified,
		Delta:      d,
	}
}

// Publisher delivers a report somewhere.
type Publisher interface {
	Publish(ctx context.Context, r Report) error
}

// Encode renders r as "json" or "yaml".
func Encode(r Report, format string) ([]byte, error) {
	switch format {
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return buf.Bytes(), nil
	case "yaml":
		out, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// WriteText lists a delta one path per line: "- " for deletes, "+ " for
// creates and "~ " for changes, in that order.
func WriteText(w io.Writer, d fsnap.Delta) error {
	groups := []struct {
		mark  string
		paths []string
	}{
		{"-", d.Deletes},
		{"+", d.Creates},
		{"~", d.Changes},
	}
	for _, g := range groups {
		for _, p := range g.paths {
			if _, err := fmt.Fprintf(w, "%s %s\n", g.mark, p); err != nil {
				return err
			}
		}
	}
	return nil
}
