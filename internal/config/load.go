package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath         = "fsnap.yaml"
	defaultPollInterval = 2 * time.Second
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := mapEnvKey(envPattern.FindStringSubmatch(m)[1])
		return os.Getenv(key)
	})
}

func Load(path string) (*Config, error) {
	// read raw YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	// expand $(ENV_VAR) placeholders
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Watch.Mode == "" {
		c.Watch.Mode = "poll"
	}
	if c.Watch.Mode == "poll" && c.Watch.PollInterval == 0 {
		c.Watch.PollInterval = defaultPollInterval
	}
	if c.Report.Format == "" {
		c.Report.Format = "json"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Snapshot.AllPatterns()) == 0 {
		errs = append(errs, errors.New("snapshot: no dirs or patterns configured"))
	}
	if c.Snapshot.Workers < 0 {
		errs = append(errs, fmt.Errorf("snapshot.workers: %d is negative", c.Snapshot.Workers))
	}

	switch c.Watch.Mode {
	case "poll":
		if c.Watch.PollInterval <= 0 {
			errs = append(errs, fmt.Errorf("watch.pollInterval: %s must be positive", c.Watch.PollInterval))
		}
	case "cron":
		if _, err := cron.ParseStandard(c.Watch.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("watch.schedule %q: %w", c.Watch.Schedule, err))
		}
	default:
		errs = append(errs, fmt.Errorf("watch.mode: unknown mode %q", c.Watch.Mode))
	}

	switch c.Report.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("report.format: unknown format %q", c.Report.Format))
	}
	if c.Report.Keep < 0 {
		errs = append(errs, fmt.Errorf("report.keep: %d is negative", c.Report.Keep))
	}

	return errors.Join(errs...)
}
