package constants

const (
	// DayFormat is the canonical calendar-date layout used at every
	// storage and CLI boundary. Time-of-day never crosses a boundary.
	DayFormat = "2006-01-02"

	// ClockFormat is the layout for reminder times (time-of-day only).
	ClockFormat = "15:04"

	// DefaultReminderTime is used when reminders are enabled without an
	// explicit time.
	DefaultReminderTime = "09:00"
)
