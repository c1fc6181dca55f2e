package cli

import (
	"fmt"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/achievements"
	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
)

type DoneCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `help:"Date to toggle (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	target, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	today := time.Now()
	updated := engine.ToggleCompletion(h, target, today)
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return err
	}

	dateStr := engine.FormatDay(target)
	if engine.CompletedOn(updated, target) {
		fmt.Printf("✓ %s completed for %s", updated.Name, dateStr)
		if updated.Streak > h.Streak {
			fmt.Printf(" (streak %d)", updated.Streak)
		}
		fmt.Println()
	} else {
		fmt.Printf("Unmarked %s for %s\n", updated.Name, dateStr)
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if engine.CompletedOn(updated, target) && engine.AllDueCompleted(habits, target) {
		fmt.Println("All habits done for the day — great job! 🎉")
	}

	// Refresh achievements against the new state
	stored, err := ctx.Store.GetAchievements()
	if err != nil {
		return err
	}
	evaluated := achievements.Evaluate(stored, habits, today)
	for _, a := range evaluated {
		if !a.Unlocked {
			continue
		}
		was := false
		for _, prev := range stored {
			if prev.ID == a.ID && prev.Unlocked {
				was = true
				break
			}
		}
		if !was {
			fmt.Printf("%s Achievement unlocked: %s — %s\n", a.Icon, a.Name, a.Description)
		}
	}
	return ctx.Store.SaveAchievements(evaluated)
}
