// Package stats computes dashboard statistics from habit records.
package stats

import (
	"sort"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

// DayCount is one day's completion tally for the trailing-week chart.
type DayCount struct {
	Date      string // YYYY-MM-DD
	Completed int
	Due       int
}

// Summary aggregates the numbers shown on the statistics page.
type Summary struct {
	TotalHabits    int
	CompletedToday int
	DueToday       int
	TodayProgress  int // 0-100
	LongestStreak  int
	StreakLeader   string // name of the habit with the longest streak
	LastWeek       []DayCount
}

// Summarize builds a Summary for the given reference day. The trailing week
// runs oldest-first and ends on today.
func Summarize(habits []models.Habit, today time.Time) Summary {
	day := engine.Normalize(today)

	s := Summary{
		TotalHabits:   len(habits),
		TodayProgress: engine.ProgressForDate(habits, day),
	}

	due := engine.DueOn(habits, day)
	s.DueToday = len(due)
	for _, h := range due {
		if engine.CompletedOn(h, day) {
			s.CompletedToday++
		}
	}

	for _, h := range habits {
		if h.Streak > s.LongestStreak {
			s.LongestStreak = h.Streak
			s.StreakLeader = h.Name
		}
	}

	for i := 6; i >= 0; i-- {
		d := day.AddDate(0, 0, -i)
		dc := DayCount{Date: engine.FormatDay(d)}
		for _, h := range engine.DueOn(habits, d) {
			dc.Due++
			if engine.CompletedOn(h, d) {
				dc.Completed++
			}
		}
		s.LastWeek = append(s.LastWeek, dc)
	}

	return s
}

// TopStreaks returns up to n habits ordered by streak descending.
func TopStreaks(habits []models.Habit, n int) []models.Habit {
	sorted := make([]models.Habit, len(habits))
	copy(sorted, habits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Streak > sorted[j].Streak
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
