// Package achievements evaluates the fixed achievement catalog against a
// user's habits.
package achievements

import "github.com/Mmostafa1999/Habit-Tracker/internal/models"

// Streak thresholds for the streak-based achievements.
const (
	StreakOnARoll       = 3
	StreakWeekWarrior   = 7
	StreakMonthlyMaster = 30

	HabitCollectorCount = 5
	OrganizedCategories = 3
	PerfectWeekDays     = 7
)

// Catalog returns the fixed achievement definitions, locked. Stored state is
// merged over these by Evaluate.
func Catalog() []models.Achievement {
	return []models.Achievement{
		{ID: "first-habit", Name: "Beginner", Description: "Create your first habit", Icon: "🌱"},
		{ID: "three-days", Name: "On a Roll", Description: "Complete a habit for 3 days in a row", Icon: "🔥"},
		{ID: "seven-days", Name: "Week Warrior", Description: "Complete a habit for 7 days in a row", Icon: "📅"},
		{ID: "thirty-days", Name: "Monthly Master", Description: "Complete a habit for 30 days in a row", Icon: "🏆"},
		{ID: "five-habits", Name: "Habit Collector", Description: "Create 5 different habits", Icon: "🧩"},
		{ID: "all-categories", Name: "Organized", Description: "Create habits in 3 different categories", Icon: "📊"},
		{ID: "journal-entry", Name: "Reflective", Description: "Write your first journal entry", Icon: "📝"},
		{ID: "perfect-week", Name: "Perfect Week", Description: "Complete all habits for an entire week", Icon: "⭐"},
	}
}
