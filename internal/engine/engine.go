// Package engine holds the occurrence and streak rules for habits. Every
// function is a pure transform over in-memory habit values: callers read
// from storage, apply a transform, and write the result back.
package engine

import (
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/constants"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

// Normalize truncates a timestamp to its calendar date (midnight UTC).
// All engine functions expect normalized dates; Normalize is idempotent, so
// callers can apply it unconditionally.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a normalized date.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(constants.DayFormat, s)
}

// FormatDay renders a date as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(constants.DayFormat)
}

// EffectiveStart returns the first date on which a habit can occur: the
// later of its declared start date and its creation timestamp. A zero
// CreatedAt is ignored.
func EffectiveStart(h models.Habit) time.Time {
	start := Normalize(h.StartDate)
	if h.CreatedAt.IsZero() {
		return start
	}
	created := Normalize(h.CreatedAt)
	if created.After(start) {
		return created
	}
	return start
}

// IsDue reports whether a habit is scheduled to occur on the given calendar
// date. Time-of-day on date is ignored.
func IsDue(h models.Habit, date time.Time) bool {
	day := Normalize(date)
	if day.Before(EffectiveStart(h)) {
		return false
	}

	switch h.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		// An unconfigured weekly habit behaves as daily. Observable
		// behavior carried over from the original app; kept for
		// compatibility.
		if len(h.WeeklySchedule) == 0 {
			return true
		}
		weekday := int(day.Weekday())
		for _, wd := range h.WeeklySchedule {
			if wd == weekday {
				return true
			}
		}
		return false
	case models.FrequencyMonthly:
		// Months shorter than the start day simply have no occurrence;
		// there is no rollover to the last day of the month.
		return day.Day() == EffectiveStart(h).Day()
	default:
		return true
	}
}

// DueOn filters habits down to those due on the given date, preserving
// order.
func DueOn(habits []models.Habit, date time.Time) []models.Habit {
	var due []models.Habit
	for _, h := range habits {
		if IsDue(h, date) {
			due = append(due, h)
		}
	}
	return due
}
