package cli

import (
	"fmt"

	"github.com/Mmostafa1999/Habit-Tracker/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	validator := validation.New()
	problemCount := 0

	fmt.Println("Validating habits...")
	for _, h := range habits {
		result := validator.ValidateHabit(h)
		for _, p := range result.Problems {
			fmt.Printf("  %s: %s (%s)\n", h.Name, p.Message, p.Type)
			problemCount++
		}
	}

	fmt.Println("Validating categories...")
	for _, c := range categories {
		result := validator.ValidateCategory(c)
		for _, p := range result.Problems {
			fmt.Printf("  %s: %s (%s)\n", c.Name, p.Message, p.Type)
			problemCount++
		}
	}

	fmt.Println()
	if problemCount == 0 {
		fmt.Println("No problems found.")
	} else {
		fmt.Printf("Found %d problem(s). Stored records are sanitized on read;\n", problemCount)
		fmt.Println("edit the listed habits to fix the underlying data.")
	}

	return nil
}
