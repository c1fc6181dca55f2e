package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	summary := stats.Summarize(habits, time.Now())

	fmt.Println("Habit stats:")
	fmt.Printf("  Habits:          %d\n", summary.TotalHabits)
	fmt.Printf("  Due today:       %d\n", summary.DueToday)
	fmt.Printf("  Completed today: %d (%d%%)\n", summary.CompletedToday, summary.TodayProgress)
	if summary.LongestStreak > 0 {
		fmt.Printf("  Longest streak:  %d (%s)\n", summary.LongestStreak, summary.StreakLeader)
	}

	fmt.Println("\nLast 7 days:")
	for _, day := range summary.LastWeek {
		bar := ""
		if day.Due > 0 {
			filled := day.Completed * 10 / day.Due
			bar = strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
		} else {
			bar = strings.Repeat("·", 10)
		}
		fmt.Printf("  %s  %s  %d/%d\n", day.Date, bar, day.Completed, day.Due)
	}

	top := stats.TopStreaks(habits, 5)
	for len(top) > 0 && top[len(top)-1].Streak == 0 {
		top = top[:len(top)-1]
	}
	if len(top) > 0 {
		fmt.Println("\nTop streaks:")
		for _, h := range top {
			fmt.Printf("  %-30s %d\n", h.Name, h.Streak)
		}
	}

	return nil
}
