package engine

import (
	"testing"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

func dailyHabit(id string, records ...models.CompletionRecord) models.Habit {
	return models.Habit{
		ID:                id,
		Frequency:         models.FrequencyDaily,
		StartDate:         date(2024, time.January, 1),
		CompletionHistory: records,
	}
}

func TestAllDueCompleted_EmptyDueSetIsFalse(t *testing.T) {
	if AllDueCompleted(nil, date(2024, time.March, 10)) {
		t.Errorf("Expected false with no habits at all")
	}

	// A habit exists but is not due on Sunday.
	habits := []models.Habit{
		{
			ID:             "weekday-only",
			Frequency:      models.FrequencyWeekly,
			StartDate:      date(2024, time.January, 1),
			WeeklySchedule: []int{1, 2, 3, 4, 5},
		},
	}
	if AllDueCompleted(habits, date(2024, time.March, 10)) { // a Sunday
		t.Errorf("Expected false when nothing is due")
	}
}

func TestAllDueCompleted_AllAndSome(t *testing.T) {
	day := date(2024, time.March, 10)
	habits := []models.Habit{
		dailyHabit("a", models.CompletionRecord{Date: "2024-03-10", Completed: true}),
		dailyHabit("b", models.CompletionRecord{Date: "2024-03-10", Completed: true}),
	}
	if !AllDueCompleted(habits, day) {
		t.Errorf("Expected true when every due habit is completed")
	}

	habits = append(habits, dailyHabit("c"))
	if AllDueCompleted(habits, day) {
		t.Errorf("Expected false when one due habit is incomplete")
	}
}

func TestProgressForDate(t *testing.T) {
	day := date(2024, time.March, 10)

	if got := ProgressForDate(nil, day); got != 0 {
		t.Errorf("Expected 0%% with no due habits, got %d", got)
	}

	habits := []models.Habit{
		dailyHabit("a", models.CompletionRecord{Date: "2024-03-10", Completed: true}),
		dailyHabit("b"),
		dailyHabit("c"),
		dailyHabit("d", models.CompletionRecord{Date: "2024-03-10", Completed: true}),
	}
	if got := ProgressForDate(habits, day); got != 50 {
		t.Errorf("Expected 50%%, got %d", got)
	}

	all := []models.Habit{
		dailyHabit("a", models.CompletionRecord{Date: "2024-03-10", Completed: true}),
	}
	if got := ProgressForDate(all, day); got != 100 {
		t.Errorf("Expected 100%%, got %d", got)
	}
}

func TestProgressForDate_CountsOnlyDueHabits(t *testing.T) {
	// 2024-03-11 is a Monday; the weekend habit is not due and must not
	// drag the percentage down.
	day := date(2024, time.March, 11)
	habits := []models.Habit{
		dailyHabit("a", models.CompletionRecord{Date: "2024-03-11", Completed: true}),
		{
			ID:             "weekend",
			Frequency:      models.FrequencyWeekly,
			StartDate:      date(2024, time.January, 1),
			WeeklySchedule: []int{0, 6},
		},
	}

	if got := ProgressForDate(habits, day); got != 100 {
		t.Errorf("Expected 100%% ignoring not-due habits, got %d", got)
	}
}

func TestMonthSummary(t *testing.T) {
	habits := []models.Habit{
		dailyHabit("a",
			models.CompletionRecord{Date: "2024-02-01", Completed: true},
			models.CompletionRecord{Date: "2024-02-02", Completed: true},
		),
		dailyHabit("b",
			models.CompletionRecord{Date: "2024-02-01", Completed: true},
		),
	}

	completed, partial := MonthSummary(habits, 2024, time.February)

	if len(completed) != 1 || completed[0] != 1 {
		t.Errorf("Expected day 1 fully completed, got %v", completed)
	}
	if len(partial) != 1 || partial[0] != 2 {
		t.Errorf("Expected day 2 partially completed, got %v", partial)
	}
}

func TestMonthSummary_DaysBeforeStartExcluded(t *testing.T) {
	habits := []models.Habit{
		{
			ID:        "late",
			Frequency: models.FrequencyDaily,
			StartDate: date(2024, time.February, 20),
			CompletionHistory: []models.CompletionRecord{
				{Date: "2024-02-20", Completed: true},
			},
		},
	}

	completed, partial := MonthSummary(habits, 2024, time.February)
	if len(partial) != 0 {
		t.Errorf("Expected no partial days, got %v", partial)
	}
	if len(completed) != 1 || completed[0] != 20 {
		t.Errorf("Expected only day 20 completed, got %v", completed)
	}
}
