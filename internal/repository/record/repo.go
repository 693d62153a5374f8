// Package record reads the external record source: appointment rows with
// trigger fields and the patient upload log. The core never writes here.
package record

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/wb-go/wbf/dbpg"

	"github.com/medremind/appointment-notifier/internal/model"
)

// Repository provides read access to appointment records and uploads.
type Repository struct {
	db *dbpg.DB
	sb sq.StatementBuilderType
}

// NewRepository creates a new record-source repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListSchedulable returns records that carry usable trigger fields: a
// channel identity, a reminder time and at least one date. An elapsed
// recur_until only ends the recurring trigger, not the record; the trigger
// calculator applies it.
func (r *Repository) ListSchedulable(ctx context.Context) ([]model.AppointmentRecord, error) {
	q := r.sb.
		Select(
			"patient_id",
			"channel_id",
			"channel",
			"appointment_date",
			"send_date",
			"reminder_time",
			"details",
			"remind_every_day",
			"recur_until",
		).
		From("appointment_records").
		Where(sq.NotEq{"channel_id": nil}).
		Where(sq.NotEq{"channel_id": ""}).
		Where(sq.NotEq{"reminder_time": nil}).
		Where(sq.Or{
			sq.NotEq{"appointment_date": nil},
			sq.NotEq{"send_date": nil},
		}).
		OrderBy("patient_id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build schedulable query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedulable records: %w", err)
	}
	defer rows.Close()

	var records []model.AppointmentRecord
	for rows.Next() {
		var (
			rec     model.AppointmentRecord
			channel sql.NullString
			details sql.NullString
		)
		if err := rows.Scan(
			&rec.PatientID,
			&rec.ChannelID,
			&channel,
			&rec.AppointmentDate,
			&rec.SendDate,
			&rec.ReminderTime,
			&details,
			&rec.RemindEveryDay,
			&rec.RecurUntil,
		); err != nil {
			return nil, err
		}

		rec.Channel = channel.String
		if rec.Channel == "" {
			rec.Channel = "line"
		}
		rec.Details = details.String

		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListUploads returns the upload log of one patient, most recent first.
func (r *Repository) ListUploads(ctx context.Context, patientID string) ([]model.UploadRecord, error) {
	q := r.sb.
		Select("file_name", "storage_path", "uploaded_at").
		From("patient_uploads").
		Where(sq.Eq{"patient_id": patientID}).
		OrderBy("uploaded_at DESC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build uploads query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []model.UploadRecord
	for rows.Next() {
		var u model.UploadRecord
		if err := rows.Scan(&u.FileName, &u.StoragePath, &u.UploadedAt); err != nil {
			return nil, err
		}

		uploads = append(uploads, u)
	}

	return uploads, rows.Err()
}
