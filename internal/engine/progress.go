package engine

import (
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

// AllDueCompleted reports whether every habit due on the date has a
// completed record for it. An empty due-set returns false: there is nothing
// to celebrate.
func AllDueCompleted(habits []models.Habit, date time.Time) bool {
	due := DueOn(habits, date)
	if len(due) == 0 {
		return false
	}
	for _, h := range due {
		if !CompletedOn(h, date) {
			return false
		}
	}
	return true
}

// ProgressForDate returns the 0-100 completion percentage for a date:
// completed due habits over all due habits. Returns 0 when nothing is due.
func ProgressForDate(habits []models.Habit, date time.Time) int {
	due := DueOn(habits, date)
	if len(due) == 0 {
		return 0
	}
	completed := 0
	for _, h := range due {
		if CompletedOn(h, date) {
			completed++
		}
	}
	return 100 * completed / len(due)
}

// MonthSummary buckets the days of a month by completion: days where every
// due habit was completed, and days where some but not all were. Days with
// no due habits land in neither bucket.
func MonthSummary(habits []models.Habit, year int, month time.Month) (completed, partial []int) {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		due := DueOn(habits, date)
		if len(due) == 0 {
			continue
		}
		doneCount := 0
		for _, h := range due {
			if CompletedOn(h, date) {
				doneCount++
			}
		}
		switch {
		case doneCount == len(due):
			completed = append(completed, day)
		case doneCount > 0:
			partial = append(partial, day)
		}
	}
	return completed, partial
}
