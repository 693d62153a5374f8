// Package job orchestrates the notification core: discovery enrollment,
// status reads, outcome recording and operator surfacing. All job state
// lives in the job store; the service is the only writer besides the
// scheduler's claim and sweep.
package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/medremind/appointment-notifier/internal/metrics"
	"github.com/medremind/appointment-notifier/internal/model"
	jobrepo "github.com/medremind/appointment-notifier/internal/repository/job"
	"github.com/medremind/appointment-notifier/internal/trigger"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/job/mock.go -package=mocks

const lastDispatchKey = "jobs:last_dispatch_at"

type jobRepository interface {
	Enroll(ctx context.Context, job model.NotificationJob) (uuid.UUID, error)
	RecordOutcome(ctx context.Context, id uuid.UUID, delivered bool, reason string, maxAttempts int) (model.NotificationJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CancelOrphans(ctx context.Context, activePatients []string) (int64, error)
	GetJobStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type recordSource interface {
	ListSchedulable(ctx context.Context) ([]model.AppointmentRecord, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type alerter interface {
	Alert(subject, body string) error
}

// Stats is the operational snapshot exposed by the API.
type Stats struct {
	Counts         map[string]int `json:"counts"`
	LastDispatchAt string         `json:"last_dispatch_at,omitempty"`
}

type Service struct {
	jobs        jobRepository
	records     recordSource
	cache       cache
	alerter     alerter
	loc         *time.Location
	maxAttempts int
}

func NewService(
	jobs jobRepository,
	records recordSource,
	cache cache,
	alerter alerter,
	loc *time.Location,
	maxAttempts int,
) *Service {
	return &Service{
		jobs:        jobs,
		records:     records,
		cache:       cache,
		alerter:     alerter,
		loc:         loc,
		maxAttempts: maxAttempts,
	}
}

// DiscoverAndEnroll scans the record source and enrolls a job for every
// trigger occurrence not seen before. Duplicate occurrences are expected
// no-ops, past occurrences are kept as expired rows, and pending jobs of
// patients that dropped out of the source are cancelled. Returns the
// number of newly enrolled jobs.
func (s *Service) DiscoverAndEnroll(ctx context.Context, strategy retry.Strategy) (int, error) {
	now := time.Now().In(s.loc)

	records, err := s.records.ListSchedulable(ctx)
	if err != nil {
		return 0, fmt.Errorf("list schedulable records: %w", err)
	}

	var enrolled int
	active := make([]string, 0, len(records))

	for _, rec := range records {
		active = append(active, rec.PatientID)

		triggers := trigger.BuildTriggers(rec, now, s.loc)
		if len(triggers) == 0 {
			zlog.Logger.Warn().Str("patient_id", rec.PatientID).Msg("record has no schedulable triggers, skipping")
			continue
		}

		for _, tr := range triggers {
			j := model.NotificationJob{
				PatientID: rec.PatientID,
				ChannelID: rec.ChannelID,
				Channel:   rec.Channel,
				Kind:      tr.Kind,
				FireAt:    tr.FireAt,
				Message:   tr.Message,
				Status:    model.StatusPending,
			}
			if tr.Kind == model.KindRecurring {
				j.RecurUntil = rec.RecurUntil
			}
			if tr.Expired {
				j.Status = model.StatusExpired
			}

			id, err := s.jobs.Enroll(ctx, j)
			if errors.Is(err, jobrepo.ErrDuplicateJob) {
				continue
			}
			if err != nil {
				zlog.Logger.Error().Err(err).
					Str("patient_id", rec.PatientID).
					Str("kind", string(tr.Kind)).
					Msg("failed to enroll job")
				continue
			}

			if j.Status == model.StatusExpired {
				zlog.Logger.Warn().
					Str("patient_id", rec.PatientID).
					Str("kind", string(tr.Kind)).
					Time("fire_at", tr.FireAt).
					Msg("occurrence already past, enrolled as expired")
			} else {
				enrolled++
			}

			if err := s.cache.SetWithRetry(ctx, strategy, id.String(), j.Status); err != nil {
				zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
			}
		}
	}

	cancelled, err := s.jobs.CancelOrphans(ctx, active)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to cancel orphaned jobs")
	} else if cancelled > 0 {
		zlog.Logger.Info().Int64("count", cancelled).Msg("cancelled jobs of removed records")
	}

	return enrolled, nil
}

// GetJobStatusByID reads a job's status through the cache.
func (s *Service) GetJobStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get job status from cache")
	}

	if errors.Is(err, redis.Nil) {
		status, err = s.jobs.GetJobStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get job status: %w", err)
		}

		if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
		}
	}

	return status, nil
}

// GetJobStatusFromStore reads a job's status from the job store, bypassing
// the cache, and refreshes the cached value. The dispatch path re-checks
// the firing state this way: claiming happens in bulk inside the store, so
// the cache may still hold the enroll-time status.
func (s *Service) GetJobStatusFromStore(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.jobs.GetJobStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get job status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}

	return status, nil
}

// SetStatus forces a job status; used by the operational cancel endpoint.
func (s *Service) SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error {
	if err := s.jobs.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update job status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}

	return nil
}

// RecordOutcome settles one dispatch attempt and returns the resulting
// status. Terminal failures are alerted to operators; the recurrence
// re-enrollment happens inside the store transaction.
func (s *Service) RecordOutcome(ctx context.Context, strategy retry.Strategy, id uuid.UUID, delivered bool, reason string) (string, error) {
	j, err := s.jobs.RecordOutcome(ctx, id, delivered, reason, s.maxAttempts)
	if err != nil {
		return "", fmt.Errorf("record outcome: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), j.Status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}
	if err := s.cache.SetWithRetry(ctx, strategy, lastDispatchKey, time.Now().In(s.loc).Format(time.RFC3339)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to cache last dispatch time")
	}

	switch j.Status {
	case model.StatusDelivered:
		metrics.IncDispatch("delivered")
	case model.StatusPending:
		metrics.IncDispatch("retry")
	case model.StatusFailed:
		metrics.IncDispatch("failed")

		subject := fmt.Sprintf("notification job %s failed permanently", id)
		body := fmt.Sprintf(
			"job %s (patient %s, kind %s) failed after %d attempts\nlast error: %s\n",
			id, j.PatientID, j.Kind, j.AttemptCount, reason,
		)
		if err := s.alerter.Alert(subject, body); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to alert operators")
		}
	}

	return j.Status, nil
}

// Stats reports job counts per status and the last settled dispatch time.
func (s *Service) Stats(ctx context.Context, strategy retry.Strategy) (Stats, error) {
	counts, err := s.jobs.CountByStatus(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count jobs: %w", err)
	}

	last, err := s.cache.GetWithRetry(ctx, strategy, lastDispatchKey)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Msg("failed to get last dispatch time from cache")
	}

	return Stats{Counts: counts, LastDispatchAt: last}, nil
}
