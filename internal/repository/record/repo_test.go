package record

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestListSchedulable(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	appt := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"patient_id", "channel_id", "channel", "appointment_date", "send_date",
		"reminder_time", "details", "remind_every_day", "recur_until",
	}).
		AddRow("p-1", "U123", "line", appt, nil, "09:00:00", "bring ID", false, nil).
		AddRow("p-2", "+66812345678", nil, nil, appt, "08:30:00", nil, true, now.Add(48*time.Hour))

	mock.ExpectQuery("SELECT .+ FROM appointment_records WHERE").
		WillReturnRows(rows)

	records, err := repo.ListSchedulable(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "p-1", records[0].PatientID)
	assert.Equal(t, "line", records[0].Channel)
	assert.Equal(t, "bring ID", records[0].Details)
	require.NotNil(t, records[0].AppointmentDate)
	assert.Equal(t, appt, *records[0].AppointmentDate)

	// missing channel falls back to line, nil details stay empty
	assert.Equal(t, "line", records[1].Channel)
	assert.Equal(t, "", records[1].Details)
	assert.True(t, records[1].RemindEveryDay)
	require.NotNil(t, records[1].RecurUntil)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A record whose recurrence stop already passed must still be listed:
// recur_until ends only the recurring trigger, and filtering the whole
// record out here would make orphan cancellation kill the patient's
// still-valid appointment jobs.
func TestListSchedulable_ElapsedRecurrenceStopStillListed(t *testing.T) {
	repo, mock := setupMockDB(t)

	futureAppt := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	elapsedStop := time.Now().Add(-48 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"patient_id", "channel_id", "channel", "appointment_date", "send_date",
		"reminder_time", "details", "remind_every_day", "recur_until",
	}).
		AddRow("p-1", "U123", "line", futureAppt, nil, "09:00:00", nil, true, elapsedStop)

	// the full query is pinned: no predicate on recur_until
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT patient_id, channel_id, channel, appointment_date, send_date, " +
			"reminder_time, details, remind_every_day, recur_until " +
			"FROM appointment_records " +
			"WHERE channel_id IS NOT NULL AND channel_id <> $1 AND reminder_time IS NOT NULL " +
			"AND (appointment_date IS NOT NULL OR send_date IS NOT NULL) " +
			"ORDER BY patient_id",
	)).
		WithArgs("").
		WillReturnRows(rows)

	records, err := repo.ListSchedulable(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p-1", records[0].PatientID)
	require.NotNil(t, records[0].RecurUntil)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUploads(t *testing.T) {
	repo, mock := setupMockDB(t)

	uploadedAt := time.Now()
	rows := sqlmock.NewRows([]string{"file_name", "storage_path", "uploaded_at"}).
		AddRow("scan.png", "uploads/p-1/scan.png", uploadedAt).
		AddRow("note.pdf", "uploads/p-1/note.pdf", uploadedAt.Add(-time.Hour))

	mock.ExpectQuery("SELECT .+ FROM patient_uploads WHERE").
		WithArgs("p-1").
		WillReturnRows(rows)

	uploads, err := repo.ListUploads(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, uploads, 2)
	assert.Equal(t, "scan.png", uploads[0].FileName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUploads_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .+ FROM patient_uploads WHERE").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"file_name", "storage_path", "uploaded_at"}))

	uploads, err := repo.ListUploads(context.Background(), "p-1")
	assert.NoError(t, err)
	assert.Empty(t, uploads)
	assert.NoError(t, mock.ExpectationsWereMet())
}
