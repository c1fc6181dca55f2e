package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Mmostafa1999/Habit-Tracker/internal/cli"
	"github.com/Mmostafa1999/Habit-Tracker/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/habits/habits.db"`

	Init         cli.InitCmd         `cmd:"" help:"Initialize habits storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day          cli.DayCmd          `cmd:"" help:"Show due habits for a day."`
	Done         cli.DoneCmd         `cmd:"" help:"Toggle a habit's completion."`
	Habit        struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Journal struct {
		Add    cli.JournalAddCmd    `cmd:"" help:"Attach a journal entry to a habit's day."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Clear a journal entry."`
		List   cli.JournalListCmd   `cmd:"" help:"List journal entries."`
	} `cmd:"" help:"Manage journal entries."`
	Category struct {
		Add    cli.CategoryAddCmd    `cmd:"" help:"Add a category."`
		List   cli.CategoryListCmd   `cmd:"" help:"List categories."`
		Edit   cli.CategoryEditCmd   `cmd:"" help:"Edit a category."`
		Delete cli.CategoryDeleteCmd `cmd:"" help:"Delete a category."`
	} `cmd:"" help:"Manage categories."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievements."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show habit statistics."`
	Calendar     cli.CalendarCmd     `cmd:"" help:"Show a month's completion calendar."`
	Backup       struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	Prefs    cli.PrefsCmd    `cmd:"" help:"View or update preferences."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run data health checks."`
	Validate cli.ValidateCmd `cmd:"" help:"Validate stored habit data."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habits"),
		kong.Description("Habit tracker with streaks, journals, and achievements"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
