package model

import (
	"time"

	"github.com/google/uuid"
)

// JobKind identifies which trigger of a record a job was enrolled for.
type JobKind string

const (
	KindSendDate       JobKind = "send_date"
	KindAppointmentDay JobKind = "appointment_day"
	KindDayBefore      JobKind = "day_before"
	KindRecurring      JobKind = "recurring"
)

// Job status lifecycle: pending -> firing -> delivered | failed.
// Retryable failures move a firing job back to pending on the same row.
// Expired is terminal and marks occurrences that were already in the past
// when first observed.
const (
	StatusPending   = "pending"
	StatusFiring    = "firing"
	StatusDelivered = "delivered"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// NotificationJob is one scheduled occurrence of a reminder trigger.
// The (PatientID, Kind, FireAt) tuple is unique across all statuses, which
// makes re-running the discovery scan a no-op for enrolled occurrences.
type NotificationJob struct {
	ID           uuid.UUID  `json:"id"`
	PatientID    string     `json:"patient_id"`
	ChannelID    string     `json:"channel_id"`    // messaging-platform identity the message is pushed to
	Channel      string     `json:"channel"`       // delivery method, e.g. "line", "sms"
	Kind         JobKind    `json:"kind"`
	FireAt       time.Time  `json:"fire_at"`       // absolute instant the message is due
	RecurUntil   *time.Time `json:"recur_until,omitempty"` // recurrence stop, set for recurring jobs only
	Message      string     `json:"message"`       // precomputed text body
	Status       string     `json:"status"`
	AttemptCount int        `json:"attempt_count"`
	LastError    string     `json:"last_error,omitempty"`
	ClaimedAt    *time.Time `json:"claimed_at,omitempty"` // lease start, set while firing
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
