// Package cleanup runs the periodic purge of stale orders on a cron
// schedule.
package cleanup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// PurgeFunc deletes stale orders and reports how many rows went away.
type PurgeFunc func(age time.Duration) (int64, error)

// Runner fires the purge on a cron schedule.
type Runner struct {
	purge    PurgeFunc
	maxAge   time.Duration
	schedule cron.Schedule
}

// Opts holds parameters for creating a Runner.
type Opts struct {
	Purge    PurgeFunc
	MaxAge   time.Duration // orders older than this are purged
	Schedule string        // 5-field cron expression, e.g. "0 * * * *"
}

// New creates a Runner. The schedule is validated up front so a bad
// expression fails at startup, not at 3am.
func New(opts Opts) (*Runner, error) {
	if opts.Purge == nil {
		return nil, fmt.Errorf("cleanup: purge func is required")
	}
	if opts.MaxAge <= 0 {
		return nil, fmt.Errorf("cleanup: max age must be positive")
	}
	sched, err := cronParser.Parse(opts.Schedule)
	if err != nil {
		return nil, fmt.Errorf("cleanup: parse schedule %q: %w", opts.Schedule, err)
	}
	return &Runner{purge: opts.Purge, maxAge: opts.MaxAge, schedule: sched}, nil
}

// Start runs the purge loop until ctx is cancelled. It returns immediately;
// the loop runs in a background goroutine.
func (r *Runner) Start(ctx context.Context) {
	go r.run(ctx)
}

func (r *Runner) run(ctx context.Context) {
	timer := time.NewTimer(r.next())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			r.RunOnce()
			timer.Reset(r.next())
		}
	}
}

// RunOnce fires a single purge immediately. Errors are logged, not returned:
// a failed purge retries on the next tick anyway.
func (r *Runner) RunOnce() {
	n, err := r.purge(r.maxAge)
	if err != nil {
		log.Printf("cleanup: purge: %v", err)
		return
	}
	if n > 0 {
		log.Printf("cleanup: purged %d stale orders", n)
	}
}

// next returns the duration until the schedule's next fire time.
func (r *Runner) next() time.Duration {
	d := time.Until(r.schedule.Next(time.Now()))
	if d < time.Second {
		d = time.Second
	}
	return d
}
