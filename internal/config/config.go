// Package config loads the YAML configuration of the fsnap watch loop.
package config

import (
	"time"

	"github.com/electron-utils/fsnap"
)

type Config struct {
	Snapshot     SnapshotConfig `yaml:"snapshot"`
	Watch        WatchConfig    `yaml:"watch"`
	Report       ReportConfig   `yaml:"report"`
	Logging      LoggingConfig  `yaml:"logging"`
	ConfigReload ReloadConfig   `yaml:"configReload"`
}

type SnapshotConfig struct {
	Dirs           []string `yaml:"dirs"`     // each expands to dir/**/*
	Patterns       []string `yaml:"patterns"` // raw glob patterns
	Dot            bool     `yaml:"dot"`
	FilesOnly      bool     `yaml:"filesOnly"`
	NoFollow       bool     `yaml:"noFollow"`
	FailOnIOErrors bool     `yaml:"failOnIOErrors"`
	Ignore         []string `yaml:"ignore"`
	Workers        int      `yaml:"workers"`
}

type WatchConfig struct {
	Mode         string        `yaml:"mode"`         // "poll", "cron"
	PollInterval time.Duration `yaml:"pollInterval"` // e.g. 2s
	Schedule     string        `yaml:"schedule"`     // cron spec, e.g. "@every 30s"
	Raw          bool          `yaml:"raw"`          // publish deltas without simplifying
}

type ReportConfig struct {
	Dir          string `yaml:"dir"`    // empty: log only
	Format       string `yaml:"format"` // "json", "yaml"
	Keep         int    `yaml:"keep"`   // 0 keeps everything
	IncludeEmpty bool   `yaml:"includeEmpty"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "json", "text"
}

type ReloadConfig struct {
	Enabled bool `yaml:"enabled"` // reload on SIGHUP
}

// AllPatterns returns the dir patterns followed by the raw patterns.
func (s SnapshotConfig) AllPatterns() []string {
	out := make([]string, 0, len(s.Dirs)+len(s.Patterns))
	for _, d := range s.Dirs {
		out = append(out, fsnap.Tree(d))
	}
	return append(out, s.Patterns...)
}

func (s SnapshotConfig) MatchOptions() fsnap.MatchOptions {
	return fsnap.MatchOptions{
		Dot:            s.Dot,
		FilesOnly:      s.FilesOnly,
		NoFollow:       s.NoFollow,
		FailOnIOErrors: s.FailOnIOErrors,
		Ignore:         s.Ignore,
	}
}
