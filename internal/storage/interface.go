package storage

import "github.com/Mmostafa1999/Habit-Tracker/internal/models"

// Preferences are the user-level settings persisted alongside habits.
type Preferences struct {
	DarkMode            bool   `json:"dark_mode"`
	ReminderEnabled     bool   `json:"reminder_enabled"`
	DefaultReminderTime string `json:"default_reminder_time"` // HH:MM
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Preferences
	GetPreferences() (Preferences, error)
	SavePreferences(Preferences) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error

	// Categories
	AddCategory(models.Category) error
	GetCategory(id string) (models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(models.Category) error
	// DeleteCategory removes the category and clears the reference on any
	// habit that pointed at it.
	DeleteCategory(id string) error

	// Achievements
	GetAchievements() ([]models.Achievement, error)
	SaveAchievements([]models.Achievement) error

	// Utils
	GetConfigPath() string
}
