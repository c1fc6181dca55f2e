package storage

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Mmostafa1999/Habit-Tracker/internal/constants"
	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/migration"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
	"github.com/Mmostafa1999/Habit-Tracker/internal/validation"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationsFS returns the embedded SQL migrations, rooted so that the
// migration files sit at the top level.
func MigrationsFS() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

type SQLiteStore struct {
	path      string
	db        *sql.DB
	validator *validation.Validator
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path:      path,
		validator: validation.New(),
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Run migrations
	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize default preferences if not present
	if _, err := s.GetPreferences(); err != nil {
		defaults := Preferences{
			DarkMode:            false,
			ReminderEnabled:     false,
			DefaultReminderTime: constants.DefaultReminderTime,
		}
		if err := s.SavePreferences(defaults); err != nil {
			return fmt.Errorf("failed to save default preferences: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habits init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Refuse to open a database written by a newer build.
	runner := migration.NewRunner(s.db, MigrationsFS())
	if err := runner.Validate(); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) runMigrations() error {
	runner := migration.NewRunner(s.db, MigrationsFS())
	_, err := runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetPreferences() (Preferences, error) {
	rows, err := s.db.Query("SELECT key, value FROM preferences")
	if err != nil {
		return Preferences{}, err
	}
	defer rows.Close()

	prefs := Preferences{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Preferences{}, err
		}
		switch key {
		case "dark_mode":
			prefs.DarkMode = value == "true"
		case "reminder_enabled":
			prefs.ReminderEnabled = value == "true"
		case "default_reminder_time":
			prefs.DefaultReminderTime = value
		}
		count++
	}

	if count == 0 {
		return Preferences{}, fmt.Errorf("preferences not found")
	}

	return prefs, nil
}

func (s *SQLiteStore) SavePreferences(prefs Preferences) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("dark_mode", fmt.Sprintf("%t", prefs.DarkMode)); err != nil {
		return err
	}
	if _, err := stmt.Exec("reminder_enabled", fmt.Sprintf("%t", prefs.ReminderEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec("default_reminder_time", prefs.DefaultReminderTime); err != nil {
		return err
	}

	return tx.Commit()
}

const habitColumns = `id, name, description, frequency, category, streak, start_date, created_at,
	completed, last_completed_date, completion_history, reminder_enabled, reminder_time,
	display_order, weekly_schedule`

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = ?", id)
	habit, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, fmt.Errorf("habit with id %s not found", id)
	}
	return habit, err
}

func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE name = ?", name)
	habit, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, fmt.Errorf("habit named %q not found", name)
	}
	return habit, err
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query("SELECT " + habitColumns + " FROM habits ORDER BY display_order ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	if err := s.validator.ValidateHabit(habit).Err(); err != nil {
		return err
	}

	historyJSON, err := json.Marshal(habit.CompletionHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal completion history: %w", err)
	}
	scheduleJSON, err := json.Marshal(habit.WeeklySchedule)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly schedule: %w", err)
	}

	var createdAt string
	if !habit.CreatedAt.IsZero() {
		createdAt = habit.CreatedAt.UTC().Format(time.RFC3339)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, habit.Frequency, habit.Category,
		habit.Streak, habit.StartDate.Format(constants.DayFormat), createdAt,
		habit.Completed, habit.LastCompletedDate, string(historyJSON),
		habit.ReminderEnabled, habit.ReminderTime, habit.Order, string(scheduleJSON),
	)
	return err
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	res, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("habit with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) AddCategory(category models.Category) error {
	return s.UpdateCategory(category)
}

func (s *SQLiteStore) GetCategory(id string) (models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(
		"SELECT id, name, color, display_order FROM categories WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Color, &c.Order)
	if err == sql.ErrNoRows {
		return models.Category{}, fmt.Errorf("category with id %s not found", id)
	}
	return c, err
}

func (s *SQLiteStore) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query("SELECT id, name, color, display_order FROM categories ORDER BY display_order ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Order); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (s *SQLiteStore) UpdateCategory(category models.Category) error {
	if err := s.validator.ValidateCategory(category).Err(); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO categories (id, name, color, display_order) VALUES (?, ?, ?, ?)",
		category.ID, category.Name, category.Color, category.Order,
	)
	return err
}

func (s *SQLiteStore) DeleteCategory(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("category with id %s not found", id)
	}

	// Clear the reference on habits that used this category
	if _, err := tx.Exec("UPDATE habits SET category = '' WHERE category = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetAchievements() ([]models.Achievement, error) {
	rows, err := s.db.Query("SELECT id, name, description, icon, unlocked, unlocked_at FROM achievements")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Achievement
	for rows.Next() {
		var a models.Achievement
		var unlockedAt sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Unlocked, &unlockedAt); err != nil {
			return nil, err
		}
		if unlockedAt.Valid && unlockedAt.String != "" {
			if ts, err := time.Parse(time.RFC3339, unlockedAt.String); err == nil {
				a.UnlockedAt = &ts
			}
		}
		list = append(list, a)
	}

	return list, rows.Err()
}

func (s *SQLiteStore) SaveAchievements(list []models.Achievement) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO achievements (id, name, description, icon, unlocked, unlocked_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range list {
		var unlockedAt sql.NullString
		if a.UnlockedAt != nil {
			unlockedAt = sql.NullString{String: a.UnlockedAt.UTC().Format(time.RFC3339), Valid: true}
		}
		if _, err := stmt.Exec(a.ID, a.Name, a.Description, a.Icon, a.Unlocked, unlockedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var startDate string
	var createdAt, historyJSON, scheduleJSON, lastCompleted, description, category, reminderTime sql.NullString

	err := row.Scan(
		&h.ID, &h.Name, &description, &h.Frequency, &category, &h.Streak,
		&startDate, &createdAt, &h.Completed, &lastCompleted, &historyJSON,
		&h.ReminderEnabled, &reminderTime, &h.Order, &scheduleJSON,
	)
	if err != nil {
		return models.Habit{}, err
	}

	h.Description = description.String
	h.Category = category.String
	h.LastCompletedDate = lastCompleted.String
	h.ReminderTime = reminderTime.String

	if h.StartDate, err = time.Parse(constants.DayFormat, startDate); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s has malformed start date %q: %w", h.ID, startDate, err)
	}
	if createdAt.Valid && createdAt.String != "" {
		if ts, err := time.Parse(time.RFC3339, createdAt.String); err == nil {
			h.CreatedAt = ts
		}
	}

	if historyJSON.Valid && historyJSON.String != "" {
		if err := json.Unmarshal([]byte(historyJSON.String), &h.CompletionHistory); err != nil {
			return models.Habit{}, fmt.Errorf("habit %s has malformed completion history: %w", h.ID, err)
		}
	}
	if scheduleJSON.Valid && scheduleJSON.String != "" {
		if err := json.Unmarshal([]byte(scheduleJSON.String), &h.WeeklySchedule); err != nil {
			return models.Habit{}, fmt.Errorf("habit %s has malformed weekly schedule: %w", h.ID, err)
		}
	}

	return engine.Sanitize(h), nil
}
