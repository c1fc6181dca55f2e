package engine

import (
	"testing"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

func TestSanitize(t *testing.T) {
	h := models.Habit{
		Streak:         -3,
		WeeklySchedule: []int{-1, 2, 9, 5},
		CompletionHistory: []models.CompletionRecord{
			{Date: "2024-03-10", Completed: true},
			{Date: "2024-03-10", Completed: false},
			{Date: "2024-03-11", Completed: true},
		},
	}

	got := Sanitize(h)

	if got.Streak != 0 {
		t.Errorf("Expected streak clamped to 0, got %d", got.Streak)
	}
	if len(got.WeeklySchedule) != 2 || got.WeeklySchedule[0] != 2 || got.WeeklySchedule[1] != 5 {
		t.Errorf("Expected out-of-range weekdays dropped, got %v", got.WeeklySchedule)
	}
	if len(got.CompletionHistory) != 2 {
		t.Fatalf("Expected duplicate records collapsed, got %d", len(got.CompletionHistory))
	}
	if !got.CompletionHistory[0].Completed {
		t.Errorf("Expected first record for a date to win")
	}
}

func TestSanitize_WellFormedUnchanged(t *testing.T) {
	h := models.Habit{
		Streak:         2,
		WeeklySchedule: []int{0, 6},
		CompletionHistory: []models.CompletionRecord{
			{Date: "2024-03-10", Completed: true},
		},
	}

	got := Sanitize(h)
	if got.Streak != 2 || len(got.WeeklySchedule) != 2 || len(got.CompletionHistory) != 1 {
		t.Errorf("Expected well-formed habit unchanged, got %+v", got)
	}
}
