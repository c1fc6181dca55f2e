package achievements

import (
	"sort"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

// Evaluate merges stored achievement state with the catalog, unlocks any
// newly earned achievements, and returns the result sorted unlocked-first.
// Achievements are never re-locked: once earned, stored state wins.
func Evaluate(stored []models.Achievement, habits []models.Habit, today time.Time) []models.Achievement {
	byID := make(map[string]models.Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}

	now := time.Now()
	result := make([]models.Achievement, 0, len(Catalog()))
	for _, def := range Catalog() {
		a := def
		if prev, ok := byID[def.ID]; ok && prev.Unlocked {
			a.Unlocked = true
			a.UnlockedAt = prev.UnlockedAt
		} else if earned(def.ID, habits, today) {
			a.Unlocked = true
			a.UnlockedAt = &now
		}
		result = append(result, a)
	}

	Sort(result)
	return result
}

// Sort orders achievements unlocked-first, most recently unlocked on top.
func Sort(list []models.Achievement) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Unlocked != b.Unlocked {
			return a.Unlocked
		}
		if a.Unlocked && a.UnlockedAt != nil && b.UnlockedAt != nil {
			return a.UnlockedAt.After(*b.UnlockedAt)
		}
		return false
	})
}

func earned(id string, habits []models.Habit, today time.Time) bool {
	switch id {
	case "first-habit":
		return len(habits) >= 1
	case "three-days":
		return maxStreak(habits) >= StreakOnARoll
	case "seven-days":
		return maxStreak(habits) >= StreakWeekWarrior
	case "thirty-days":
		return maxStreak(habits) >= StreakMonthlyMaster
	case "five-habits":
		return len(habits) >= HabitCollectorCount
	case "all-categories":
		return categoryCount(habits) >= OrganizedCategories
	case "journal-entry":
		return hasJournalEntry(habits)
	case "perfect-week":
		return perfectWeek(habits, today)
	default:
		return false
	}
}

func maxStreak(habits []models.Habit) int {
	best := 0
	for _, h := range habits {
		if h.Streak > best {
			best = h.Streak
		}
	}
	return best
}

func categoryCount(habits []models.Habit) int {
	seen := make(map[string]bool)
	for _, h := range habits {
		if h.Category != "" {
			seen[h.Category] = true
		}
	}
	return len(seen)
}

func hasJournalEntry(habits []models.Habit) bool {
	for _, h := range habits {
		for _, rec := range h.CompletionHistory {
			if rec.JournalEntry != "" {
				return true
			}
		}
	}
	return false
}

// perfectWeek checks the seven consecutive days ending today. Every day must
// have at least one due habit and all of them completed.
func perfectWeek(habits []models.Habit, today time.Time) bool {
	day := engine.Normalize(today)
	for i := 0; i < PerfectWeekDays; i++ {
		if !engine.AllDueCompleted(habits, day.AddDate(0, 0, -i)) {
			return false
		}
	}
	return true
}
