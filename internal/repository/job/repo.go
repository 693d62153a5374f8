// Package job implements the durable notification job store.
package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/medremind/appointment-notifier/internal/model"
	"github.com/medremind/appointment-notifier/internal/trigger"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrDuplicateJob = errors.New("duplicate job for occurrence")
)

// Repository provides methods to interact with the notification_jobs table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new job repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Enroll inserts a job for one occurrence. The (patient_id, kind, fire_at)
// tuple is unique, so enrolling an occurrence that already exists returns
// ErrDuplicateJob; callers treat that as a no-op.
func (r *Repository) Enroll(ctx context.Context, job model.NotificationJob) (uuid.UUID, error) {
	query := `
		INSERT INTO notification_jobs (
		    patient_id, channel_id, channel, kind, fire_at, recur_until, message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (patient_id, kind, fire_at) DO NOTHING
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query,
		job.PatientID, job.ChannelID, job.Channel, job.Kind, job.FireAt, job.RecurUntil, job.Message, job.Status,
	).Scan(&job.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrDuplicateJob
		}

		return uuid.Nil, fmt.Errorf("failed to enroll job: %w", err)
	}

	return job.ID, nil
}

// ClaimDue atomically moves up to limit due pending jobs into firing and
// returns them. SKIP LOCKED makes the claim exclusive: no two scheduler
// instances ever hold the same job.
func (r *Repository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]model.NotificationJob, error) {
	query := `
		UPDATE notification_jobs
		SET status = 'firing', claimed_at = $1, updated_at = $1
		WHERE id IN (
		    SELECT id FROM notification_jobs
		    WHERE status = 'pending' AND fire_at <= $1
		    ORDER BY fire_at
		    LIMIT $2
		    FOR UPDATE SKIP LOCKED
		)
		RETURNING id, patient_id, channel_id, channel, kind, fire_at, recur_until, message, attempt_count;
    `

	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.NotificationJob
	for rows.Next() {
		j := model.NotificationJob{Status: model.StatusFiring}
		if err := rows.Scan(
			&j.ID, &j.PatientID, &j.ChannelID, &j.Channel, &j.Kind, &j.FireAt, &j.RecurUntil, &j.Message, &j.AttemptCount,
		); err != nil {
			return nil, err
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// RecordOutcome settles one dispatch attempt of a firing job. Delivered
// recurring jobs re-enroll the next occurrence at fire_at + 24h in the same
// transaction, bounded by recur_until. Failed attempts revert the job to
// pending until attempt_count reaches maxAttempts, then it is terminally
// failed. Returns the job with its resulting status.
func (r *Repository) RecordOutcome(ctx context.Context, id uuid.UUID, delivered bool, reason string, maxAttempts int) (model.NotificationJob, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.NotificationJob{}, fmt.Errorf("failed to begin outcome tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE notification_jobs
		SET attempt_count = attempt_count + 1,
		    last_error = NULLIF($2, ''),
		    status = CASE
		        WHEN $3 THEN 'delivered'
		        WHEN attempt_count + 1 >= $4 THEN 'failed'
		        ELSE 'pending'
		    END,
		    claimed_at = NULL,
		    updated_at = now()
		WHERE id = $1 AND status = 'firing'
		RETURNING patient_id, channel_id, channel, kind, fire_at, recur_until, message, status, attempt_count;
    `

	j := model.NotificationJob{ID: id, LastError: reason}
	err = tx.QueryRowContext(ctx, query, id, reason, delivered, maxAttempts).Scan(
		&j.PatientID, &j.ChannelID, &j.Channel, &j.Kind, &j.FireAt, &j.RecurUntil, &j.Message, &j.Status, &j.AttemptCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotificationJob{}, ErrJobNotFound
		}

		return model.NotificationJob{}, fmt.Errorf("failed to record outcome: %w", err)
	}

	if delivered && j.Kind == model.KindRecurring && j.RecurUntil != nil {
		next := trigger.NextOccurrence(j.FireAt)
		if !next.After(*j.RecurUntil) {
			insert := `
		INSERT INTO notification_jobs (
		    patient_id, channel_id, channel, kind, fire_at, recur_until, message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
		ON CONFLICT (patient_id, kind, fire_at) DO NOTHING;
    `
			if _, err := tx.ExecContext(
				ctx, insert,
				j.PatientID, j.ChannelID, j.Channel, j.Kind, next, j.RecurUntil, j.Message,
			); err != nil {
				return model.NotificationJob{}, fmt.Errorf("failed to re-enroll recurrence: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return model.NotificationJob{}, fmt.Errorf("failed to commit outcome: %w", err)
	}

	return j, nil
}

// UpdateStatus forces the status of a job by its ID.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE notification_jobs
		SET status = $1, updated_at = now()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

// CancelOrphans cancels pending jobs whose patient no longer has an active
// record in the record source.
func (r *Repository) CancelOrphans(ctx context.Context, activePatients []string) (int64, error) {
	query := `
		UPDATE notification_jobs
		SET status = 'cancelled', updated_at = now()
		WHERE status = 'pending' AND NOT (patient_id = ANY($1));
    `

	res, err := r.db.ExecContext(ctx, query, pq.Array(activePatients))
	if err != nil {
		return 0, fmt.Errorf("failed to cancel orphaned jobs: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

// ReclaimExpiredLeases reverts jobs that have been firing since before the
// cutoff back to pending so the next claim picks them up again.
func (r *Repository) ReclaimExpiredLeases(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE notification_jobs
		SET status = 'pending', claimed_at = NULL, updated_at = now()
		WHERE status = 'firing' AND claimed_at <= $1;
    `

	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim expired leases: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

// GetJobStatusByID retrieves the status of a job by its ID.
func (r *Repository) GetJobStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM notification_jobs
		WHERE id = $1;
    `

	var status string
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrJobNotFound
		}

		return "", fmt.Errorf("failed to get job status: %w", err)
	}

	return status, nil
}

// CountByStatus returns the number of jobs per status.
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM notification_jobs
		GROUP BY status;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}

		counts[status] = n
	}

	return counts, rows.Err()
}
