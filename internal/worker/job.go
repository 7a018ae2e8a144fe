package worker

import (
	"time"
)

// Job asks the worker to take a snapshot and publish what changed.
type Job struct {
	Reason string // "initial", "poll", "cron", "reload"
	At     time.Time
}
