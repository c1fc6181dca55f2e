package stats

import (
	"testing"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	today := date(2024, time.March, 10)
	habits := []models.Habit{
		{
			ID: "a", Name: "Read", Streak: 12,
			Frequency: models.FrequencyDaily,
			StartDate: date(2024, time.January, 1),
			CompletionHistory: []models.CompletionRecord{
				{Date: "2024-03-10", Completed: true},
				{Date: "2024-03-09", Completed: true},
			},
		},
		{
			ID: "b", Name: "Gym", Streak: 4,
			Frequency: models.FrequencyDaily,
			StartDate: date(2024, time.January, 1),
		},
	}

	s := Summarize(habits, today)

	if s.TotalHabits != 2 {
		t.Errorf("Expected 2 total habits, got %d", s.TotalHabits)
	}
	if s.DueToday != 2 || s.CompletedToday != 1 {
		t.Errorf("Expected 1/2 completed today, got %d/%d", s.CompletedToday, s.DueToday)
	}
	if s.TodayProgress != 50 {
		t.Errorf("Expected 50%% progress, got %d", s.TodayProgress)
	}
	if s.LongestStreak != 12 || s.StreakLeader != "Read" {
		t.Errorf("Expected Read leading with streak 12, got %s with %d", s.StreakLeader, s.LongestStreak)
	}
	if len(s.LastWeek) != 7 {
		t.Fatalf("Expected 7 trailing days, got %d", len(s.LastWeek))
	}
	if s.LastWeek[6].Date != "2024-03-10" {
		t.Errorf("Expected trailing week to end today, got %s", s.LastWeek[6].Date)
	}
	if s.LastWeek[6].Completed != 1 || s.LastWeek[6].Due != 2 {
		t.Errorf("Unexpected today tally: %+v", s.LastWeek[6])
	}
	if s.LastWeek[5].Completed != 1 {
		t.Errorf("Expected yesterday tally 1, got %d", s.LastWeek[5].Completed)
	}
}

func TestSummarize_NoHabits(t *testing.T) {
	s := Summarize(nil, date(2024, time.March, 10))
	if s.TodayProgress != 0 {
		t.Errorf("Expected 0%% with no habits, got %d", s.TodayProgress)
	}
	if s.StreakLeader != "" {
		t.Errorf("Expected no streak leader, got %q", s.StreakLeader)
	}
}

func TestTopStreaks(t *testing.T) {
	habits := []models.Habit{
		{Name: "a", Streak: 1},
		{Name: "b", Streak: 9},
		{Name: "c", Streak: 5},
	}

	top := TopStreaks(habits, 2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 habits, got %d", len(top))
	}
	if top[0].Name != "b" || top[1].Name != "c" {
		t.Errorf("Expected [b c], got [%s %s]", top[0].Name, top[1].Name)
	}
}
