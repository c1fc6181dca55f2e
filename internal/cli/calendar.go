package cli

import (
	"fmt"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM, default current)."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
		}
		year, month = t.Year(), t.Month()
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	completed, partial := engine.MonthSummary(habits, year, month)
	completedSet := map[int]bool{}
	for _, d := range completed {
		completedSet[d] = true
	}
	partialSet := map[int]bool{}
	for _, d := range partial {
		partialSet[d] = true
	}

	fmt.Printf("%s %d\n\n", month, year)
	fmt.Println("  Su  Mo  Tu  We  Th  Fr  Sa")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	// Leading blanks up to the first weekday
	for i := 0; i < int(first.Weekday()); i++ {
		fmt.Print("    ")
	}

	for day := 1; day <= daysInMonth; day++ {
		switch {
		case completedSet[day]:
			fmt.Printf(" %2d✓", day)
		case partialSet[day]:
			fmt.Printf(" %2d·", day)
		default:
			fmt.Printf(" %2d ", day)
		}
		if (int(first.Weekday())+day)%7 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()

	fmt.Printf("\n✓ all due habits done   · partly done\n")
	fmt.Printf("Completed days: %d, partial days: %d\n", len(completed), len(partial))
	return nil
}
