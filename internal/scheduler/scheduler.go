// Package scheduler runs periodic dataset reloads on a gocron scheduler
// owned by the API process.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ReloadFunc replaces the served dataset. It runs on the scheduler's
// goroutine and must honour ctx.
type ReloadFunc func(ctx context.Context) error

// Config controls when reloads run. Cron takes precedence over Interval;
// with both empty no job is registered.
type Config struct {
	Cron     string         // standard five-field crontab, e.g. "0 6 * * *"
	Interval time.Duration  // fixed period between reloads
	Location *time.Location // nil means UTC
}

// Enabled reports whether cfg schedules anything.
func (c Config) Enabled() bool {
	return c.Cron != "" || c.Interval > 0
}

// Scheduler wraps a gocron scheduler with the reload job.
type Scheduler struct {
	s      gocron.Scheduler
	reload ReloadFunc
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// New builds the scheduler and registers the reload job. An invalid crontab
// is reported here, before anything runs.
func New(cfg Config, reload ReloadFunc, logger *slog.Logger) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sch := &Scheduler{s: s, reload: reload, logger: logger, ctx: ctx, cancel: cancel}

	var def gocron.JobDefinition
	switch {
	case cfg.Cron != "":
		def = gocron.CronJob(cfg.Cron, false)
	case cfg.Interval > 0:
		def = gocron.DurationJob(cfg.Interval)
	default:
		return sch, nil
	}

	_, err = s.NewJob(def, gocron.NewTask(sch.runReload),
		gocron.WithName("reload"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create reload job: %w", err)
	}
	return sch, nil
}

// Run starts the scheduler and blocks until ctx is cancelled. Intended to
// be called with `go`.
func (s *Scheduler) Run(ctx context.Context) {
	s.s.Start()
	s.logger.Info("Scheduler started", "jobs", len(s.s.Jobs()))

	<-ctx.Done()
	s.cancel()
	if err := s.s.Shutdown(); err != nil {
		s.logger.Warn("Scheduler shutdown failed", "error", err)
		return
	}
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runReload() {
	start := time.Now()
	err := s.reload(s.ctx)
	dur := time.Since(start).Round(time.Millisecond)
	if err != nil {
		s.logger.Error("Scheduled reload failed", "duration", dur, "error", err)
		return
	}
	s.logger.Info("Scheduled reload finished", "duration", dur)
}
