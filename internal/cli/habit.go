package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mmostafa1999/Habit-Tracker/internal/constants"
	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Optional description."`
	Frequency   string `short:"f" help:"Frequency (daily|weekly|monthly)." default:"daily"`
	Weekdays    string `short:"w" help:"Comma-separated weekdays for weekly habits (e.g. mon,wed,fri)."`
	Category    string `short:"c" help:"Category name or ID."`
	Start       string `short:"s" help:"Start date (YYYY-MM-DD, default today)."`
	Reminder    string `short:"r" help:"Reminder time (HH:MM); enables the reminder."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var freq models.Frequency
	switch c.Frequency {
	case "daily":
		freq = models.FrequencyDaily
	case "weekly":
		freq = models.FrequencyWeekly
	case "monthly":
		freq = models.FrequencyMonthly
	default:
		return fmt.Errorf("invalid frequency: %s", c.Frequency)
	}

	var schedule []int
	if freq == models.FrequencyWeekly && c.Weekdays != "" {
		wds, err := parseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
		schedule = wds
	}

	start := time.Now()
	if c.Start != "" {
		var err error
		start, err = engine.ParseDay(c.Start)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
	}

	categoryID, err := resolveCategoryID(ctx, c.Category)
	if err != nil {
		return err
	}

	existing, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           c.Name,
		Description:    c.Description,
		Frequency:      freq,
		Category:       categoryID,
		StartDate:      engine.Normalize(start),
		CreatedAt:      time.Now(),
		WeeklySchedule: schedule,
		Order:          len(existing),
	}
	if c.Reminder != "" {
		if _, err := time.Parse(constants.ClockFormat, c.Reminder); err != nil {
			return fmt.Errorf("invalid reminder time %q (expected HH:MM)", c.Reminder)
		}
		habit.ReminderEnabled = true
		habit.ReminderTime = c.Reminder
	} else if prefs, err := ctx.Store.GetPreferences(); err == nil && prefs.ReminderEnabled {
		// New habits inherit the default reminder when one is configured
		habit.ReminderEnabled = true
		habit.ReminderTime = prefs.DefaultReminderTime
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", c.Name, habit.ID)
	return nil
}

type HabitListCmd struct {
	Category string `short:"c" help:"Show only habits in this category."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	categoryFilter := ""
	if c.Category != "" {
		categoryFilter, err = resolveCategoryID(ctx, c.Category)
		if err != nil {
			return err
		}
	}

	categories := map[string]string{}
	if cats, err := ctx.Store.GetAllCategories(); err == nil {
		for _, cat := range cats {
			categories[cat.ID] = cat.Name
		}
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		if categoryFilter != "" && h.Category != categoryFilter {
			continue
		}

		fmt.Printf("  %-30s %s, streak %d\n", h.Name, formatFrequency(h), h.Streak)
		if name, ok := categories[h.Category]; ok {
			fmt.Printf("      Category: %s\n", name)
		}
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
		if h.ReminderEnabled {
			fmt.Printf("      Reminder: %s\n", h.ReminderTime)
		}
	}

	return nil
}

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit name or ID."`
	Name        *string `help:"New name."`
	Description *string `help:"New description."`
	Frequency   *string `help:"New frequency (daily|weekly|monthly)."`
	Weekdays    *string `help:"New weekday schedule for weekly habits."`
	Category    *string `help:"New category name or ID (empty clears)."`
	Reminder    *string `help:"New reminder time (HH:MM, empty disables)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if c.Name != nil {
		h.Name = *c.Name
	}
	if c.Description != nil {
		h.Description = *c.Description
	}
	if c.Frequency != nil {
		switch *c.Frequency {
		case "daily":
			h.Frequency = models.FrequencyDaily
		case "weekly":
			h.Frequency = models.FrequencyWeekly
		case "monthly":
			h.Frequency = models.FrequencyMonthly
		default:
			return fmt.Errorf("invalid frequency: %s", *c.Frequency)
		}
	}
	if c.Weekdays != nil {
		if *c.Weekdays == "" {
			h.WeeklySchedule = nil
		} else {
			wds, err := parseWeekdays(*c.Weekdays)
			if err != nil {
				return err
			}
			h.WeeklySchedule = wds
		}
	}
	if c.Category != nil {
		if *c.Category == "" {
			h.Category = ""
		} else {
			id, err := resolveCategoryID(ctx, *c.Category)
			if err != nil {
				return err
			}
			h.Category = id
		}
	}
	if c.Reminder != nil {
		if *c.Reminder == "" {
			h.ReminderEnabled = false
			h.ReminderTime = ""
		} else {
			if _, err := time.Parse(constants.ClockFormat, *c.Reminder); err != nil {
				return fmt.Errorf("invalid reminder time %q (expected HH:MM)", *c.Reminder)
			}
			h.ReminderEnabled = true
			h.ReminderTime = *c.Reminder
		}
	}

	if err := ctx.Store.UpdateHabit(h); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", h.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

// resolveCategoryID accepts a category id or exact name. An empty input
// resolves to no category.
func resolveCategoryID(ctx *Context, nameOrID string) (string, error) {
	if nameOrID == "" {
		return "", nil
	}
	if cat, err := ctx.Store.GetCategory(nameOrID); err == nil {
		return cat.ID, nil
	}
	cats, err := ctx.Store.GetAllCategories()
	if err != nil {
		return "", err
	}
	for _, cat := range cats {
		if cat.Name == nameOrID {
			return cat.ID, nil
		}
	}
	return "", fmt.Errorf("no category named %q", nameOrID)
}
