package model

import "time"

// AppointmentRecord is a row supplied by the external record source.
// The core only reads these; a record is schedulable when a channel
// identity, a reminder time and at least one date field are present.
type AppointmentRecord struct {
	PatientID       string     `json:"patient_id"`
	ChannelID       string     `json:"channel_id"`
	Channel         string     `json:"channel"` // "line" (default) or "sms"
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	SendDate        *time.Time `json:"send_date,omitempty"`
	ReminderTime    string     `json:"reminder_time"` // "HH:MM:SS"
	Details         string     `json:"details"`
	RemindEveryDay  bool       `json:"remind_every_day"`
	RecurUntil      *time.Time `json:"recur_until,omitempty"`
}

// UploadRecord is one entry of a patient's upload log.
type UploadRecord struct {
	FileName    string    `json:"file_name"`
	StoragePath string    `json:"storage_path"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
