package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/backup"
	"github.com/Mmostafa1999/Habit-Tracker/internal/constants"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
	"github.com/Mmostafa1999/Habit-Tracker/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup takes a best-effort backup of the store. Failures
// are reported as warnings and never block the caller.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// parseDay parses a YYYY-MM-DD argument, accepting "today".
func parseDay(s string) (time.Time, error) {
	if s == "" || s == "today" {
		return time.Now(), nil
	}
	t, err := time.Parse(constants.DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}

func parseWeekdays(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	var weekdays []int

	dayMap := map[string]int{
		"sun":       0,
		"sunday":    0,
		"mon":       1,
		"monday":    1,
		"tue":       2,
		"tuesday":   2,
		"wed":       3,
		"wednesday": 3,
		"thu":       4,
		"thursday":  4,
		"fri":       5,
		"friday":    5,
		"sat":       6,
		"saturday":  6,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, num)
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

func formatFrequency(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		if len(h.WeeklySchedule) > 0 {
			var days []string
			for _, wd := range h.WeeklySchedule {
				if wd >= 0 && wd <= 6 {
					days = append(days, time.Weekday(wd).String()[:3])
				}
			}
			return fmt.Sprintf("weekly on %s", strings.Join(days, ","))
		}
		return "weekly"
	case models.FrequencyMonthly:
		return "monthly"
	default:
		return string(h.Frequency)
	}
}

// resolveHabit finds a habit by id first, then by exact name.
func resolveHabit(ctx *Context, nameOrID string) (models.Habit, error) {
	if h, err := ctx.Store.GetHabit(nameOrID); err == nil {
		return h, nil
	}
	h, err := ctx.Store.GetHabitByName(nameOrID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("no habit named %q", nameOrID)
	}
	return h, nil
}
