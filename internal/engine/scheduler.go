package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/tdevries/vintedwatch/internal/metrics"
	"github.com/tdevries/vintedwatch/internal/store"
)

const (
	// JobSweep is the job name under which the periodic watch sweep is
	// locked and recorded.
	JobSweep = "sweep"

	// staleJobCutoff is how old a "running" job run must be before boot
	// recovery marks it crashed.
	staleJobCutoff = 2 * time.Hour
)

// Scheduler drives the engine's periodic sweep through cron. Each tick
// takes an advisory lock in the store first, so multiple instances can
// run against the same database without double-sweeping.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger
	mtr    *metrics.Metrics

	// holder identifies this process in the scheduler_locks table.
	holder string

	sweepInterval time.Duration
	sweepEntryID  cron.EntryID

	started bool
}

// SchedulerOption configures the Scheduler.
type SchedulerOption func(*Scheduler)

// WithSchedulerMetrics wires Prometheus instrumentation.
func WithSchedulerMetrics(m *metrics.Metrics) SchedulerOption {
	return func(s *Scheduler) {
		s.mtr = m
	}
}

// NewScheduler creates a Scheduler that sweeps every sweepInterval.
func NewScheduler(
	eng *Engine,
	st store.Store,
	sweepInterval time.Duration,
	logger *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	if sweepInterval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive, got %s", sweepInterval)
	}

	s := &Scheduler{
		cron:          cron.New(),
		engine:        eng,
		store:         st,
		log:           logger,
		holder:        uuid.NewString(),
		sweepInterval: sweepInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %s", sweepInterval), s.sweepTick)
	if err != nil {
		return nil, fmt.Errorf("registering sweep job: %w", err)
	}
	s.sweepEntryID = entryID

	return s, nil
}

// Start begins executing scheduled jobs. Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
	s.log.Info("scheduler started",
		"sweep_interval", s.sweepInterval,
		"lock_holder", s.holder,
	)
}

// Stop halts scheduling and returns a context that is done once any
// in-flight job has finished.
func (s *Scheduler) Stop() context.Context {
	s.started = false
	return s.cron.Stop()
}

// Entries returns the registered cron entries.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes each job's next scheduled run as a
// gauge so dashboards can alert on a stalled scheduler.
func (s *Scheduler) SyncNextRunTimestamps() {
	if s.mtr == nil {
		return
	}
	entry := s.cron.Entry(s.sweepEntryID)
	if !entry.Next.IsZero() {
		s.mtr.SchedulerNextRun.WithLabelValues(JobSweep).Set(float64(entry.Next.Unix()))
	}
}

// RecoverStaleJobRuns marks job runs that are still "running" but far
// past any plausible completion as crashed. Intended to be called once
// at boot, before Start.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) error {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobCutoff)
	if err != nil {
		return fmt.Errorf("recovering stale job runs: %w", err)
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
	return nil
}

func (s *Scheduler) sweepTick() {
	ctx := context.Background()

	// The lock TTL outlives a healthy sweep by a wide margin; an
	// expired lock means the holder crashed mid-run.
	ttl := 2 * s.sweepInterval

	err := s.runJob(ctx, JobSweep, ttl, func(ctx context.Context) (int, error) {
		stats, err := s.engine.RunSweep(ctx)
		if stats == nil {
			return 0, err
		}
		return stats.Notified, err
	})
	if err != nil {
		s.log.Error("sweep job failed", "error", err)
	}

	s.SyncNextRunTimestamps()
}

// runJob wraps a job body with lock acquisition and job_runs
// bookkeeping. When another holder owns the lock the tick is skipped
// silently; the other instance is doing the work.
func (s *Scheduler) runJob(
	ctx context.Context,
	jobName string,
	ttl time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, jobName, s.holder, ttl)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", jobName, err)
	}
	if !acquired {
		s.log.Info("skipping job, lock held by another instance", "job", jobName)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(ctx, jobName, s.holder); err != nil {
			s.log.Error("releasing scheduler lock failed", "job", jobName, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, jobName)
	if err != nil {
		return fmt.Errorf("inserting job run for %s: %w", jobName, err)
	}

	rows, jobErr := fn(ctx)

	status := "succeeded"
	errText := ""
	if jobErr != nil {
		status = "failed"
		errText = jobErr.Error()
	}
	if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		s.log.Error("completing job run failed", "job", jobName, "run_id", runID, "error", err)
	}

	return jobErr
}
