package cli

import (
	"fmt"

	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	due := engine.DueOn(habits, day)
	dateStr := engine.FormatDay(day)

	fmt.Printf("Habits for %s:\n\n", dateStr)

	if len(due) == 0 {
		fmt.Println("  Nothing due")
		return nil
	}

	for _, h := range due {
		mark := "[ ]"
		if engine.CompletedOn(h, day) {
			mark = "[x]"
		}

		fmt.Printf("  %s %-30s  %s", mark, h.Name, formatFrequency(h))
		if h.Streak > 0 {
			fmt.Printf("  (streak %d)", h.Streak)
		}
		fmt.Println()

		for _, rec := range h.CompletionHistory {
			if rec.Date == dateStr && rec.JournalEntry != "" {
				fmt.Printf("      Note: %s\n", rec.JournalEntry)
				break
			}
		}
	}

	fmt.Printf("\nProgress: %d%%\n", engine.ProgressForDate(habits, day))
	if engine.AllDueCompleted(habits, day) {
		fmt.Println("All habits done — great job! 🎉")
	}

	return nil
}
