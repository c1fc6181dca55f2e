package engine

import (
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

// SetJournalEntry upserts journal text for a date and returns the updated
// habit. A missing record is created as not completed: journaling about a
// day does not mark the habit done.
func SetJournalEntry(h models.Habit, date time.Time, text string) models.Habit {
	day := FormatDay(Normalize(date))

	updated := h
	updated.CompletionHistory = make([]models.CompletionRecord, len(h.CompletionHistory))
	copy(updated.CompletionHistory, h.CompletionHistory)

	if idx := recordIndex(updated.CompletionHistory, day); idx >= 0 {
		updated.CompletionHistory[idx].JournalEntry = text
	} else {
		updated.CompletionHistory = append(updated.CompletionHistory, models.CompletionRecord{
			Date:         day,
			Completed:    false,
			JournalEntry: text,
		})
	}
	return updated
}

// ClearJournalEntry removes the journal text for a date, leaving the
// record's completion flag untouched. Clearing a date with no record is a
// no-op.
func ClearJournalEntry(h models.Habit, date time.Time) models.Habit {
	day := FormatDay(Normalize(date))

	idx := recordIndex(h.CompletionHistory, day)
	if idx < 0 {
		return h
	}

	updated := h
	updated.CompletionHistory = make([]models.CompletionRecord, len(h.CompletionHistory))
	copy(updated.CompletionHistory, h.CompletionHistory)
	updated.CompletionHistory[idx].JournalEntry = ""
	return updated
}
