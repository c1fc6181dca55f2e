package engine

import (
	"testing"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

func TestToggleCompletion_TodayCreatesCompletedRecord(t *testing.T) {
	today := date(2024, time.March, 10)
	habit := models.Habit{
		ID:        "c",
		Frequency: models.FrequencyDaily,
		StartDate: date(2024, time.January, 1),
		Streak:    2,
	}

	updated := ToggleCompletion(habit, today, today)

	if updated.Streak != 3 {
		t.Errorf("Expected streak 3, got %d", updated.Streak)
	}
	if !updated.Completed {
		t.Errorf("Expected completed cache set for today")
	}
	if updated.LastCompletedDate != "2024-03-10" {
		t.Errorf("Expected lastCompletedDate 2024-03-10, got %q", updated.LastCompletedDate)
	}
	if len(updated.CompletionHistory) != 1 {
		t.Fatalf("Expected 1 history record, got %d", len(updated.CompletionHistory))
	}
	rec := updated.CompletionHistory[0]
	if rec.Date != "2024-03-10" || !rec.Completed {
		t.Errorf("Unexpected record: %+v", rec)
	}
}

func TestToggleCompletion_IsItsOwnInverseToday(t *testing.T) {
	today := date(2024, time.March, 10)
	habit := models.Habit{
		ID:        "c",
		Frequency: models.FrequencyDaily,
		StartDate: date(2024, time.January, 1),
		Streak:    2,
	}

	once := ToggleCompletion(habit, today, today)
	twice := ToggleCompletion(once, today, today)

	if twice.Streak != habit.Streak {
		t.Errorf("Expected streak restored to %d, got %d", habit.Streak, twice.Streak)
	}
	if twice.Completed {
		t.Errorf("Expected completed cache cleared after second toggle")
	}
	if len(twice.CompletionHistory) != 1 {
		t.Fatalf("Expected the same record to be flipped, got %d records", len(twice.CompletionHistory))
	}
	if twice.CompletionHistory[0].Completed {
		t.Errorf("Expected record flipped back to incomplete")
	}
}

func TestToggleCompletion_PastDateLeavesStreakAlone(t *testing.T) {
	today := date(2024, time.March, 10)
	past := date(2024, time.March, 5)
	habit := models.Habit{
		ID:        "c",
		Frequency: models.FrequencyDaily,
		StartDate: date(2024, time.January, 1),
		Streak:    4,
	}

	updated := ToggleCompletion(habit, past, today)

	if updated.Streak != 4 {
		t.Errorf("Expected streak unchanged on past-date toggle, got %d", updated.Streak)
	}
	if updated.Completed {
		t.Errorf("Expected completed cache to still track today, which has no record")
	}
	if !CompletedOn(updated, past) {
		t.Errorf("Expected past date marked completed")
	}
}

func TestToggleCompletion_StreakNeverNegative(t *testing.T) {
	today := date(2024, time.March, 10)
	habit := models.Habit{
		ID:        "c",
		Frequency: models.FrequencyDaily,
		StartDate: date(2024, time.January, 1),
		Streak:    0,
		CompletionHistory: []models.CompletionRecord{
			{Date: "2024-03-10", Completed: true},
		},
	}

	updated := ToggleCompletion(habit, today, today)
	if updated.Streak != 0 {
		t.Errorf("Expected streak clamped at 0, got %d", updated.Streak)
	}
}

func TestToggleCompletion_DoesNotMutateInput(t *testing.T) {
	today := date(2024, time.March, 10)
	habit := models.Habit{
		ID:        "c",
		Frequency: models.FrequencyDaily,
		StartDate: date(2024, time.January, 1),
		CompletionHistory: []models.CompletionRecord{
			{Date: "2024-03-10", Completed: false},
		},
	}

	_ = ToggleCompletion(habit, today, today)

	if habit.CompletionHistory[0].Completed {
		t.Errorf("Expected input habit's history to be untouched")
	}
	if habit.Streak != 0 || habit.Completed {
		t.Errorf("Expected input habit's counters to be untouched")
	}
}

func TestToggleCompletion_PreservesJournalEntry(t *testing.T) {
	today := date(2024, time.March, 10)
	habit := models.Habit{
		ID:        "c",
		Frequency: models.FrequencyDaily,
		StartDate: date(2024, time.January, 1),
		CompletionHistory: []models.CompletionRecord{
			{Date: "2024-03-10", Completed: false, JournalEntry: "felt good"},
		},
	}

	updated := ToggleCompletion(habit, today, today)
	if updated.CompletionHistory[0].JournalEntry != "felt good" {
		t.Errorf("Expected journal text preserved through a toggle")
	}
}

func TestCompletedOn(t *testing.T) {
	habit := models.Habit{
		CompletionHistory: []models.CompletionRecord{
			{Date: "2024-03-09", Completed: true},
			{Date: "2024-03-10", Completed: false},
		},
	}

	if !CompletedOn(habit, date(2024, time.March, 9)) {
		t.Errorf("Expected Mar 9 completed")
	}
	if CompletedOn(habit, date(2024, time.March, 10)) {
		t.Errorf("Expected Mar 10 not completed")
	}
	if CompletedOn(habit, date(2024, time.March, 11)) {
		t.Errorf("Expected missing record to read as not completed")
	}
}
