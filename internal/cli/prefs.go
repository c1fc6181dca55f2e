package cli

import (
	"fmt"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/constants"
)

type PrefsCmd struct {
	DarkMode        *bool   `help:"Enable/disable dark mode in the TUI."`
	ReminderEnabled *bool   `help:"Enable/disable reminders by default for new habits."`
	ReminderTime    *string `help:"Default reminder time (HH:MM)."`
}

func (c *PrefsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	// Update preferences if flags provided
	changed := false
	if c.DarkMode != nil {
		prefs.DarkMode = *c.DarkMode
		changed = true
	}
	if c.ReminderEnabled != nil {
		prefs.ReminderEnabled = *c.ReminderEnabled
		changed = true
	}
	if c.ReminderTime != nil {
		if _, err := time.Parse(constants.ClockFormat, *c.ReminderTime); err != nil {
			return fmt.Errorf("invalid reminder time %q (expected HH:MM)", *c.ReminderTime)
		}
		prefs.DefaultReminderTime = *c.ReminderTime
		changed = true
	}

	if changed {
		if err := ctx.Store.SavePreferences(prefs); err != nil {
			return err
		}
		fmt.Println("Preferences updated.")
	}

	// Display current preferences
	fmt.Println("Current preferences:")
	fmt.Printf("  dark_mode: %t\n", prefs.DarkMode)
	fmt.Printf("  reminder_enabled: %t\n", prefs.ReminderEnabled)
	fmt.Printf("  default_reminder_time: %s\n", prefs.DefaultReminderTime)

	return nil
}
