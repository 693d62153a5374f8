// Package trigger turns appointment records into concrete fire instants.
package trigger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/medremind/appointment-notifier/internal/model"
)

// Trigger is one occurrence a record should be enrolled for. Expired marks
// occurrences whose instant was already in the past when first observed;
// they are enrolled as terminal rows instead of being silently skipped.
type Trigger struct {
	Kind    model.JobKind
	FireAt  time.Time
	Expired bool
	Message string
}

// ParseTimeOfDay parses a strict "HH:MM:SS" (or "HH:MM") value.
func ParseTimeOfDay(s string) (hour, min, sec int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("time of day %q: expected HH:MM[:SS]", s)
	}

	vals := make([]int, len(parts))
	for i, p := range parts {
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("time of day %q: %w", s, convErr)
		}
		vals[i] = v
	}

	hour, min = vals[0], vals[1]
	if len(vals) == 3 {
		sec = vals[2]
	}

	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return 0, 0, 0, fmt.Errorf("time of day %q: out of range", s)
	}

	return hour, min, sec, nil
}

// At combines a calendar date with a time-of-day in the given location.
func At(date time.Time, timeOfDay string, loc *time.Location) (time.Time, error) {
	if date.IsZero() {
		return time.Time{}, fmt.Errorf("date is not set")
	}

	h, m, s, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, loc), nil
}

// ComputeFireInstant combines date and time-of-day into an absolute instant.
// ok is false when either input is malformed or the instant is at or before
// now: notifications never fire retroactively.
func ComputeFireInstant(date time.Time, timeOfDay string, now time.Time, loc *time.Location) (time.Time, bool) {
	at, err := At(date, timeOfDay, loc)
	if err != nil {
		return time.Time{}, false
	}

	if !at.After(now) {
		return at, false
	}

	return at, true
}

// NextOccurrence is the recurrence step: exactly 24 hours after the
// previous occurrence.
func NextOccurrence(prev time.Time) time.Time {
	return prev.Add(24 * time.Hour)
}

// Eligible reports whether a record carries the fields required for
// scheduling at all: a channel identity, a parsable time-of-day and at
// least one date. Recurring reminders additionally require an explicit
// recurrence stop.
func Eligible(rec model.AppointmentRecord) bool {
	if rec.ChannelID == "" {
		return false
	}
	if _, _, _, err := ParseTimeOfDay(rec.ReminderTime); err != nil {
		return false
	}
	return rec.AppointmentDate != nil || rec.SendDate != nil
}

// BuildTriggers expands a record into its full trigger set. Records missing
// required fields yield no triggers; the caller must not enroll anything.
// Day-before uses the appointment date minus one calendar day, same time.
// The first recurring occurrence is advanced in 24h steps past instants
// that already elapsed, bounded by the record's recurrence stop.
func BuildTriggers(rec model.AppointmentRecord, now time.Time, loc *time.Location) []Trigger {
	if !Eligible(rec) {
		return nil
	}

	var triggers []Trigger

	add := func(kind model.JobKind, date time.Time, msg string) {
		at, err := At(date, rec.ReminderTime, loc)
		if err != nil {
			return
		}
		triggers = append(triggers, Trigger{
			Kind:    kind,
			FireAt:  at,
			Expired: !at.After(now),
			Message: msg,
		})
	}

	if rec.SendDate != nil {
		add(model.KindSendDate, *rec.SendDate, renderSendDate(rec))
	}

	if rec.AppointmentDate != nil {
		add(model.KindAppointmentDay, *rec.AppointmentDate, renderAppointmentDay(rec))
		add(model.KindDayBefore, rec.AppointmentDate.AddDate(0, 0, -1), renderDayBefore(rec))
	}

	if rec.RemindEveryDay && rec.RecurUntil != nil {
		if first, ok := firstRecurring(rec, now, loc); ok {
			triggers = append(triggers, Trigger{
				Kind:    model.KindRecurring,
				FireAt:  first,
				Message: renderRecurring(rec),
			})
		}
	}

	return triggers
}

func firstRecurring(rec model.AppointmentRecord, now time.Time, loc *time.Location) (time.Time, bool) {
	base := now
	if rec.SendDate != nil {
		base = *rec.SendDate
	} else if rec.AppointmentDate != nil {
		base = *rec.AppointmentDate
	}

	at, err := At(base, rec.ReminderTime, loc)
	if err != nil {
		return time.Time{}, false
	}

	for !at.After(now) {
		at = NextOccurrence(at)
	}

	if at.After(*rec.RecurUntil) {
		return time.Time{}, false
	}

	return at, true
}

func hhmm(timeOfDay string) string {
	h, m, _, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return timeOfDay
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

func renderAppointmentDay(rec model.AppointmentRecord) string {
	return fmt.Sprintf("วันนี้คุณมีนัดหมาย เวลา %s น. รายละเอียด: %s", hhmm(rec.ReminderTime), rec.Details)
}

func renderDayBefore(rec model.AppointmentRecord) string {
	return fmt.Sprintf("พรุ่งนี้คุณมีนัดหมาย เวลา %s น. รายละเอียด: %s", hhmm(rec.ReminderTime), rec.Details)
}

func renderSendDate(rec model.AppointmentRecord) string {
	if rec.AppointmentDate != nil {
		return fmt.Sprintf("แจ้งเตือน: คุณมีนัดหมายวันที่ %s เวลา %s น. รายละเอียด: %s",
			rec.AppointmentDate.Format("02/01/2006"), hhmm(rec.ReminderTime), rec.Details)
	}
	return fmt.Sprintf("แจ้งเตือนนัดหมาย รายละเอียด: %s", rec.Details)
}

func renderRecurring(rec model.AppointmentRecord) string {
	return fmt.Sprintf("แจ้งเตือนประจำวัน: %s", rec.Details)
}
