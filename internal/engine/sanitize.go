package engine

import "github.com/Mmostafa1999/Habit-Tracker/internal/models"

// Sanitize normalizes a habit loaded from storage so the rest of the engine
// can assume well-formed input: the streak is clamped at zero, weekday
// indices out of 0-6 are dropped, and duplicate history records for the same
// date are collapsed (first one wins).
func Sanitize(h models.Habit) models.Habit {
	if h.Streak < 0 {
		h.Streak = 0
	}

	if len(h.WeeklySchedule) > 0 {
		var schedule []int
		for _, wd := range h.WeeklySchedule {
			if wd >= 0 && wd <= 6 {
				schedule = append(schedule, wd)
			}
		}
		h.WeeklySchedule = schedule
	}

	if len(h.CompletionHistory) > 0 {
		seen := make(map[string]bool, len(h.CompletionHistory))
		history := make([]models.CompletionRecord, 0, len(h.CompletionHistory))
		for _, rec := range h.CompletionHistory {
			if seen[rec.Date] {
				continue
			}
			seen[rec.Date] = true
			history = append(history, rec)
		}
		h.CompletionHistory = history
	}

	return h
}
