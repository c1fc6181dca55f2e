package cli

import (
	"fmt"
	"sort"

	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

type JournalAddCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Text  string `arg:"" help:"Journal text."`
	Date  string `help:"Date for the entry (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	updated := engine.SetJournalEntry(h, day, c.Text)
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Journal saved for %s on %s\n", updated.Name, engine.FormatDay(day))
	return nil
}

type JournalDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `help:"Date of the entry (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	updated := engine.ClearJournalEntry(h, day)
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Journal cleared for %s on %s\n", updated.Name, engine.FormatDay(day))
	return nil
}

type JournalListCmd struct {
	Habit string `arg:"" optional:"" help:"Limit to one habit (name or ID)."`
}

type journalLine struct {
	habitName string
	date      string
	text      string
}

func (c *JournalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if c.Habit != "" {
		h, err := resolveHabit(ctx, c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{h}
	}

	var entries []journalLine
	for _, h := range habits {
		for _, rec := range h.CompletionHistory {
			if rec.JournalEntry == "" {
				continue
			}
			entries = append(entries, journalLine{h.Name, rec.Date, rec.JournalEntry})
		}
	}

	if len(entries) == 0 {
		fmt.Println("No journal entries found")
		return nil
	}

	// Newest first
	sort.Slice(entries, func(i, j int) bool { return entries[i].date > entries[j].date })

	fmt.Println("Journal entries:")
	for _, e := range entries {
		fmt.Printf("  %s  %-25s %s\n", e.date, e.habitName, e.text)
	}
	return nil
}
