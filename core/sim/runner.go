// Package sim drives the simulation: a cooperative single-goroutine runner
// firing independently-phased periodic tasks, and the telemetry publisher
// those tasks invoke.
package sim

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zachAtSiftStack/tlmSim/core/logger"
)

// Task is one periodic job. A task fires whenever its own elapsed time since
// the last fire reaches its interval; tasks never run in lock-step with each
// other.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(now time.Time)
}

// DefaultIdleWait paces the poll loop without altering the per-task firing
// rule.
const DefaultIdleWait = time.Millisecond

// Runner polls a monotonic clock and fires due tasks from a single
// goroutine. Stop may be called from any goroutine; it is observed between
// loop iterations, so an in-flight task always completes.
type Runner struct {
	tasks []Task
	idle  time.Duration
	log   logger.Logger

	now     func() time.Time
	sleep   func(time.Duration)
	stopped atomic.Bool
}

// NewRunner creates a runner over the wall clock.
func NewRunner(tasks []Task, idle time.Duration, log logger.Logger) *Runner {
	return NewRunnerWithClock(tasks, idle, log, time.Now, time.Sleep)
}

// NewRunnerWithClock is NewRunner with an injectable clock and sleeper, used
// by deterministic tests.
func NewRunnerWithClock(tasks []Task, idle time.Duration, log logger.Logger, now func() time.Time, sleep func(time.Duration)) *Runner {
	if idle <= 0 {
		idle = DefaultIdleWait
	}
	return &Runner{tasks: tasks, idle: idle, log: log, now: now, sleep: sleep}
}

// Run executes the poll loop until the duration elapses, Stop is called or
// the context is cancelled.
func (r *Runner) Run(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("run duration must be positive, got %v", duration)
	}
	for _, t := range r.tasks {
		if t.Interval <= 0 {
			return fmt.Errorf("task %s: interval must be positive", t.Name)
		}
	}

	start := r.now()
	last := make([]time.Time, len(r.tasks))
	for i := range last {
		last[i] = start
	}

	for {
		now := r.now()
		if now.Sub(start) >= duration || r.stopped.Load() {
			break
		}
		select {
		case <-ctx.Done():
			r.log.Infof("simulation cancelled after %v", now.Sub(start))
			return nil
		default:
		}
		for i := range r.tasks {
			if now.Sub(last[i]) >= r.tasks[i].Interval {
				r.tasks[i].Run(now)
				last[i] = now
			}
		}
		r.sleep(r.idle)
	}
	r.log.Infof("simulation complete after %v", r.now().Sub(start))
	return nil
}

// Stop requests a cooperative shutdown of the run loop.
func (r *Runner) Stop() { r.stopped.Store(true) }
