// Package validation checks habit and category records at the storage
// boundary so the engine can assume closed, well-typed input.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/constants"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

type ProblemType string

const (
	ProblemEmptyName         ProblemType = "empty_name"
	ProblemUnknownFrequency  ProblemType = "unknown_frequency"
	ProblemInvalidWeekday    ProblemType = "invalid_weekday"
	ProblemInvalidReminder   ProblemType = "invalid_reminder"
	ProblemNegativeStreak    ProblemType = "negative_streak"
	ProblemDuplicateRecord   ProblemType = "duplicate_record"
	ProblemMalformedDate     ProblemType = "malformed_date"
	ProblemEmptyCategoryName ProblemType = "empty_category_name"
)

type Problem struct {
	Type    ProblemType
	Message string
}

type Result struct {
	Problems []Problem
}

func (r Result) Valid() bool {
	return len(r.Problems) == 0
}

func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	msgs := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		msgs[i] = p.Message
	}
	return fmt.Errorf("invalid record: %s", strings.Join(msgs, "; "))
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateHabit(h models.Habit) Result {
	var result Result
	add := func(t ProblemType, format string, args ...any) {
		result.Problems = append(result.Problems, Problem{
			Type:    t,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if strings.TrimSpace(h.Name) == "" {
		add(ProblemEmptyName, "habit name must not be empty")
	}

	switch h.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
	default:
		add(ProblemUnknownFrequency, "unknown frequency %q", h.Frequency)
	}

	for _, wd := range h.WeeklySchedule {
		if wd < 0 || wd > 6 {
			add(ProblemInvalidWeekday, "weekday index %d out of range 0-6", wd)
		}
	}

	if h.ReminderEnabled && h.ReminderTime != "" {
		if _, err := time.Parse(constants.ClockFormat, h.ReminderTime); err != nil {
			add(ProblemInvalidReminder, "reminder time %q is not HH:MM", h.ReminderTime)
		}
	}

	if h.Streak < 0 {
		add(ProblemNegativeStreak, "streak must not be negative")
	}

	seen := make(map[string]bool, len(h.CompletionHistory))
	for _, rec := range h.CompletionHistory {
		if _, err := time.Parse(constants.DayFormat, rec.Date); err != nil {
			add(ProblemMalformedDate, "record date %q is not YYYY-MM-DD", rec.Date)
			continue
		}
		if seen[rec.Date] {
			add(ProblemDuplicateRecord, "more than one record for %s", rec.Date)
		}
		seen[rec.Date] = true
	}

	return result
}

func (v *Validator) ValidateCategory(c models.Category) Result {
	var result Result
	if strings.TrimSpace(c.Name) == "" {
		result.Problems = append(result.Problems, Problem{
			Type:    ProblemEmptyCategoryName,
			Message: "category name must not be empty",
		})
	}
	return result
}
