// Package worker runs the background processes of the notifier: the
// scheduler loop that claims due jobs and the worker pool that dispatches
// them. Scheduling is poll-driven; no per-job timer ever lives in process
// memory, so pending work survives restarts.
package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/medremind/appointment-notifier/internal/metrics"
	"github.com/medremind/appointment-notifier/internal/model"
	"github.com/medremind/appointment-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/worker/scheduler_mock.go -package=mocks

type jobStore interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]model.NotificationJob, error)
	ReclaimExpiredLeases(ctx context.Context, cutoff time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type dispatchPublisher interface {
	Publish(msg queue.DispatchMessage, strategy retry.Strategy) error
}

type enroller interface {
	DiscoverAndEnroll(ctx context.Context, strategy retry.Strategy) (int, error)
}

// SchedulerConfig bounds the loop: poll and sweep cadence, the lease a
// firing job may hold before it is reclaimed, the claim batch size and the
// cron spec of the record-source discovery scan.
type SchedulerConfig struct {
	PollInterval  time.Duration
	SweepInterval time.Duration
	Lease         time.Duration
	BatchSize     int
	DiscoverySpec string
}

type Scheduler struct {
	jobs     jobStore
	queue    dispatchPublisher
	enroller enroller
	cfg      SchedulerConfig
}

func NewScheduler(jobs jobStore, q dispatchPublisher, enroller enroller, cfg SchedulerConfig) *Scheduler {
	return &Scheduler{
		jobs:     jobs,
		queue:    q,
		enroller: enroller,
		cfg:      cfg,
	}
}

// Run drives the scheduler until the context is cancelled. Each poll tick
// claims due jobs and hands them to the dispatch queue; the sweep tick
// reclaims stale leases; discovery runs on its cron cadence, once
// immediately at startup.
func (s *Scheduler) Run(ctx context.Context, strategy retry.Strategy) {
	s.discover(ctx, strategy)

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.DiscoverySpec, func() {
		s.discover(ctx, strategy)
	}); err != nil {
		zlog.Logger.Fatal().Err(err).Str("spec", s.cfg.DiscoverySpec).Msg("invalid discovery cron spec")
	}
	c.Start()
	defer c.Stop()

	pollTicker := time.NewTicker(s.cfg.PollInterval)
	defer pollTicker.Stop()
	sweepTicker := time.NewTicker(s.cfg.SweepInterval)
	defer sweepTicker.Stop()

	zlog.Logger.Info().
		Dur("poll_interval", s.cfg.PollInterval).
		Dur("lease", s.cfg.Lease).
		Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case now := <-pollTicker.C:
			s.tick(ctx, now, strategy)
		case now := <-sweepTicker.C:
			s.sweep(ctx, now)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time, strategy retry.Strategy) {
	var jobs []model.NotificationJob

	// store outages back off via the retry strategy instead of crashing
	err := retry.Do(func() error {
		var claimErr error
		jobs, claimErr = s.jobs.ClaimDue(ctx, now, s.cfg.BatchSize)
		return claimErr
	}, strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim due jobs, pausing until next tick")
		return
	}

	metrics.ObserveClaimedBatch(len(jobs))

	for _, j := range jobs {
		msg := queue.DispatchMessage{
			JobID:        j.ID,
			PatientID:    j.PatientID,
			ChannelID:    j.ChannelID,
			Channel:      j.Channel,
			Kind:         j.Kind,
			FireAt:       j.FireAt,
			Message:      j.Message,
			AttemptCount: j.AttemptCount,
		}

		if err := s.queue.Publish(msg, strategy); err != nil {
			// the lease sweep returns unpublished claims to pending
			zlog.Logger.Error().Err(err).Str("id", j.ID.String()).Msg("failed to publish claimed job")
		}
	}

	counts, err := s.jobs.CountByStatus(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to count jobs")
		return
	}
	for status, n := range counts {
		metrics.SetJobs(status, float64(n))
	}
}

func (s *Scheduler) sweep(ctx context.Context, now time.Time) {
	n, err := s.jobs.ReclaimExpiredLeases(ctx, now.Add(-s.cfg.Lease))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to reclaim expired leases")
		return
	}

	if n > 0 {
		metrics.AddLeaseReclaims(n)
		zlog.Logger.Warn().Int64("count", n).Msg("reclaimed stale firing jobs")
	}
}

func (s *Scheduler) discover(ctx context.Context, strategy retry.Strategy) {
	n, err := s.enroller.DiscoverAndEnroll(ctx, strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("discovery scan failed")
		return
	}

	if n > 0 {
		zlog.Logger.Info().Int("enrolled", n).Msg("discovery scan enrolled new jobs")
	}
}
