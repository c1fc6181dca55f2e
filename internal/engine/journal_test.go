package engine

import (
	"testing"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

func TestSetJournalEntry_CreatesIncompleteRecord(t *testing.T) {
	habit := dailyHabit("a")
	day := date(2024, time.March, 10)

	updated := SetJournalEntry(habit, day, "slow start")

	if len(updated.CompletionHistory) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(updated.CompletionHistory))
	}
	rec := updated.CompletionHistory[0]
	if rec.JournalEntry != "slow start" {
		t.Errorf("Expected journal text set, got %q", rec.JournalEntry)
	}
	if rec.Completed {
		t.Errorf("Expected journaling not to mark the habit complete")
	}
}

func TestSetJournalEntry_UpdatesExistingRecord(t *testing.T) {
	habit := dailyHabit("a", models.CompletionRecord{Date: "2024-03-10", Completed: true, JournalEntry: "old"})
	day := date(2024, time.March, 10)

	updated := SetJournalEntry(habit, day, "new")

	if len(updated.CompletionHistory) != 1 {
		t.Fatalf("Expected the existing record to be reused, got %d records", len(updated.CompletionHistory))
	}
	rec := updated.CompletionHistory[0]
	if rec.JournalEntry != "new" {
		t.Errorf("Expected journal text replaced, got %q", rec.JournalEntry)
	}
	if !rec.Completed {
		t.Errorf("Expected completion flag untouched")
	}
}

func TestClearJournalEntry_KeepsCompletionFlag(t *testing.T) {
	habit := dailyHabit("a", models.CompletionRecord{Date: "2024-03-10", Completed: true, JournalEntry: "done well"})
	day := date(2024, time.March, 10)

	updated := ClearJournalEntry(habit, day)

	rec := updated.CompletionHistory[0]
	if rec.JournalEntry != "" {
		t.Errorf("Expected journal text cleared, got %q", rec.JournalEntry)
	}
	if !rec.Completed {
		t.Errorf("Expected completion flag preserved when clearing journal text")
	}
	// original untouched
	if habit.CompletionHistory[0].JournalEntry != "done well" {
		t.Errorf("Expected input habit unchanged")
	}
}

func TestClearJournalEntry_MissingRecordIsNoop(t *testing.T) {
	habit := dailyHabit("a")
	updated := ClearJournalEntry(habit, date(2024, time.March, 10))
	if len(updated.CompletionHistory) != 0 {
		t.Errorf("Expected no record created, got %d", len(updated.CompletionHistory))
	}
}
