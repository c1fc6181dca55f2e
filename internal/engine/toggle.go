package engine

import (
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

// recordIndex finds the completion record for a date in a history, or -1.
func recordIndex(history []models.CompletionRecord, day string) int {
	for i, rec := range history {
		if rec.Date == day {
			return i
		}
	}
	return -1
}

// CompletedOn reports whether a habit has a completed record for the date.
func CompletedOn(h models.Habit, date time.Time) bool {
	i := recordIndex(h.CompletionHistory, FormatDay(Normalize(date)))
	return i >= 0 && h.CompletionHistory[i].Completed
}

// ToggleCompletion flips a habit's completion state for target and returns
// the updated habit. The input habit is not mutated.
//
// The streak counter moves only when target is today: +1 on completing,
// -1 (clamped at zero) on un-completing. Past-date toggles edit the history
// without recomputing the streak. Toggling a date with no record always
// creates it as completed. The Completed cache always tracks today's record,
// regardless of which date was toggled.
func ToggleCompletion(h models.Habit, target, today time.Time) models.Habit {
	targetDay := FormatDay(Normalize(target))
	todayDay := FormatDay(Normalize(today))

	updated := h
	updated.CompletionHistory = make([]models.CompletionRecord, len(h.CompletionHistory))
	copy(updated.CompletionHistory, h.CompletionHistory)

	idx := recordIndex(updated.CompletionHistory, targetDay)
	wasCompleted := idx >= 0 && updated.CompletionHistory[idx].Completed

	if targetDay == todayDay {
		if !wasCompleted {
			updated.Streak++
			updated.LastCompletedDate = targetDay
		} else if updated.Streak > 0 {
			updated.Streak--
		}
	}

	if idx >= 0 {
		updated.CompletionHistory[idx].Completed = !wasCompleted
	} else {
		updated.CompletionHistory = append(updated.CompletionHistory, models.CompletionRecord{
			Date:      targetDay,
			Completed: true,
		})
	}

	todayIdx := recordIndex(updated.CompletionHistory, todayDay)
	updated.Completed = todayIdx >= 0 && updated.CompletionHistory[todayIdx].Completed

	return updated
}
