package cli

import (
	"fmt"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/achievements"
)

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	stored, err := ctx.Store.GetAchievements()
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	evaluated := achievements.Evaluate(stored, habits, time.Now())
	if err := ctx.Store.SaveAchievements(evaluated); err != nil {
		return err
	}

	achievements.Sort(evaluated)

	unlocked := 0
	for _, a := range evaluated {
		if a.Unlocked {
			unlocked++
		}
	}

	fmt.Printf("Achievements (%d/%d unlocked):\n\n", unlocked, len(evaluated))
	for _, a := range evaluated {
		if a.Unlocked {
			when := ""
			if a.UnlockedAt != nil {
				when = a.UnlockedAt.Format("2006-01-02")
			}
			fmt.Printf("  %s %-20s %s  (unlocked %s)\n", a.Icon, a.Name, a.Description, when)
		} else {
			fmt.Printf("  🔒 %-20s %s\n", a.Name, a.Description)
		}
	}
	return nil
}
