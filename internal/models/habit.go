package models

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency"`
	Category    string    `json:"category,omitempty"` // Category ID
	Streak      int       `json:"streak"`
	StartDate   time.Time `json:"startDate"`
	CreatedAt   time.Time `json:"createdAt"`

	// Completed caches whether today's record is completed. It is derived
	// from CompletionHistory and recomputed on every toggle.
	Completed         bool               `json:"completed"`
	LastCompletedDate string             `json:"lastCompletedDate,omitempty"` // YYYY-MM-DD
	CompletionHistory []CompletionRecord `json:"completionHistory"`

	ReminderEnabled bool   `json:"reminderEnabled"`
	ReminderTime    string `json:"reminderTime,omitempty"` // HH:MM

	Order int `json:"order"`

	// WeeklySchedule holds weekday indices (0=Sunday..6=Saturday).
	// Meaningful only when Frequency is weekly.
	WeeklySchedule []int `json:"weeklySchedule,omitempty"`
}

// CompletionRecord is a single calendar date's outcome for a habit.
// A habit's history holds at most one record per day.
type CompletionRecord struct {
	Date         string `json:"date"` // YYYY-MM-DD format
	Completed    bool   `json:"completed"`
	JournalEntry string `json:"journalEntry,omitempty"`
}
