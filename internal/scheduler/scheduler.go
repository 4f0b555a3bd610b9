package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Job is one scheduled invocation.
type Job func(ctx context.Context) error

// Scheduler fires a job on fixed UTC-aligned boundaries (e.g. every hour on the hour).
// Runs never overlap: the next wait starts after the previous run returns.
type Scheduler struct {
	name     string
	interval time.Duration
	job      Job
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

func New(name string, interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		job:      job,
		now:      time.Now,
		after:    time.After,
	}
}

// NextRun returns the first interval boundary strictly after now, in UTC.
func NextRun(now time.Time, interval time.Duration) time.Time {
	return now.UTC().Truncate(interval).Add(interval)
}

// Start blocks, running the job at each boundary until ctx is cancelled.
// A failing run is logged and the schedule continues.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("scheduler started", "job", s.name, "interval", s.interval.String())
	for {
		next := NextRun(s.now(), s.interval)
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped", "job", s.name)
			return
		case <-s.after(next.Sub(s.now())):
		}
		if err := s.job(ctx); err != nil {
			slog.Error("scheduled run failed", "job", s.name, "scheduled_for", next, "err", err)
		}
	}
}
