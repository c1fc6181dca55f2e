package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Mmostafa1999/Habit-Tracker/internal/migration"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

// testStores returns one initialized store per backend so every test runs
// against both implementations.
func testStores(t *testing.T) map[string]Provider {
	t.Helper()

	dir := t.TempDir()

	sqlite := NewSQLiteStore(filepath.Join(dir, "habits.db"))
	if err := sqlite.Init(); err != nil {
		t.Fatalf("failed to init sqlite store: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	jsonStore := NewJSONStore(filepath.Join(dir, "habits.json"))
	if err := jsonStore.Init(); err != nil {
		t.Fatalf("failed to init json store: %v", err)
	}

	return map[string]Provider{
		"sqlite": sqlite,
		"json":   jsonStore,
	}
}

func sampleHabit(id, name string, order int) models.Habit {
	return models.Habit{
		ID:        id,
		Name:      name,
		Frequency: models.FrequencyDaily,
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC),
		Order:     order,
	}
}

func TestHabitRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			habit := sampleHabit("h1", "Read", 0)
			habit.Description = "20 pages"
			habit.Category = "cat1"
			habit.Streak = 3
			habit.WeeklySchedule = []int{1, 3, 5}
			habit.CompletionHistory = []models.CompletionRecord{
				{Date: "2024-03-10", Completed: true, JournalEntry: "good session"},
			}
			habit.ReminderEnabled = true
			habit.ReminderTime = "08:00"

			if err := store.AddHabit(habit); err != nil {
				t.Fatalf("AddHabit failed: %v", err)
			}

			got, err := store.GetHabit("h1")
			if err != nil {
				t.Fatalf("GetHabit failed: %v", err)
			}

			if got.Name != "Read" || got.Description != "20 pages" || got.Category != "cat1" {
				t.Errorf("Unexpected habit fields: %+v", got)
			}
			if got.Streak != 3 {
				t.Errorf("Expected streak 3, got %d", got.Streak)
			}
			if len(got.WeeklySchedule) != 3 {
				t.Errorf("Expected weekly schedule preserved, got %v", got.WeeklySchedule)
			}
			if len(got.CompletionHistory) != 1 || got.CompletionHistory[0].JournalEntry != "good session" {
				t.Errorf("Expected completion history preserved, got %v", got.CompletionHistory)
			}
			if !got.StartDate.Equal(habit.StartDate) {
				t.Errorf("Expected start date %v, got %v", habit.StartDate, got.StartDate)
			}
		})
	}
}

func TestGetAllHabits_OrderedByDisplayOrder(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.AddHabit(sampleHabit("h2", "Second", 1)); err != nil {
				t.Fatal(err)
			}
			if err := store.AddHabit(sampleHabit("h1", "First", 0)); err != nil {
				t.Fatal(err)
			}

			habits, err := store.GetAllHabits()
			if err != nil {
				t.Fatalf("GetAllHabits failed: %v", err)
			}
			if len(habits) != 2 {
				t.Fatalf("Expected 2 habits, got %d", len(habits))
			}
			if habits[0].Name != "First" || habits[1].Name != "Second" {
				t.Errorf("Expected order [First Second], got [%s %s]", habits[0].Name, habits[1].Name)
			}
		})
	}
}

func TestGetHabitByName(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.AddHabit(sampleHabit("h1", "Meditate", 0)); err != nil {
				t.Fatal(err)
			}

			got, err := store.GetHabitByName("Meditate")
			if err != nil {
				t.Fatalf("GetHabitByName failed: %v", err)
			}
			if got.ID != "h1" {
				t.Errorf("Expected id h1, got %s", got.ID)
			}

			if _, err := store.GetHabitByName("Nope"); err == nil {
				t.Error("Expected error for unknown name")
			}
		})
	}
}

func TestDeleteHabit(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.AddHabit(sampleHabit("h1", "Read", 0)); err != nil {
				t.Fatal(err)
			}
			if err := store.DeleteHabit("h1"); err != nil {
				t.Fatalf("DeleteHabit failed: %v", err)
			}
			if _, err := store.GetHabit("h1"); err == nil {
				t.Error("Expected habit gone after delete")
			}
			if err := store.DeleteHabit("h1"); err == nil {
				t.Error("Expected error deleting a missing habit")
			}
		})
	}
}

func TestUpdateHabit_RejectsInvalidRecord(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			habit := sampleHabit("h1", "", 0)
			if err := store.AddHabit(habit); err == nil {
				t.Error("Expected empty-name habit rejected at the store boundary")
			}
		})
	}
}

func TestDeleteCategory_ClearsHabitReferences(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.AddCategory(models.Category{ID: "cat1", Name: "Health", Color: "#22c55e"}); err != nil {
				t.Fatal(err)
			}
			habit := sampleHabit("h1", "Run", 0)
			habit.Category = "cat1"
			if err := store.AddHabit(habit); err != nil {
				t.Fatal(err)
			}

			if err := store.DeleteCategory("cat1"); err != nil {
				t.Fatalf("DeleteCategory failed: %v", err)
			}

			got, err := store.GetHabit("h1")
			if err != nil {
				t.Fatal(err)
			}
			if got.Category != "" {
				t.Errorf("Expected habit's category reference cleared, got %q", got.Category)
			}

			if _, err := store.GetCategory("cat1"); err == nil {
				t.Error("Expected category gone after delete")
			}
		})
	}
}

func TestCategoriesOrdered(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.AddCategory(models.Category{ID: "b", Name: "Work", Order: 1}); err != nil {
				t.Fatal(err)
			}
			if err := store.AddCategory(models.Category{ID: "a", Name: "Health", Order: 0}); err != nil {
				t.Fatal(err)
			}

			categories, err := store.GetAllCategories()
			if err != nil {
				t.Fatal(err)
			}
			if len(categories) != 2 || categories[0].Name != "Health" {
				t.Errorf("Expected Health first, got %v", categories)
			}
		})
	}
}

func TestAchievementsRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			unlockedAt := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
			list := []models.Achievement{
				{ID: "first-habit", Name: "Beginner", Icon: "🌱", Unlocked: true, UnlockedAt: &unlockedAt},
				{ID: "three-days", Name: "On a Roll", Icon: "🔥"},
			}

			if err := store.SaveAchievements(list); err != nil {
				t.Fatalf("SaveAchievements failed: %v", err)
			}

			got, err := store.GetAchievements()
			if err != nil {
				t.Fatalf("GetAchievements failed: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("Expected 2 achievements, got %d", len(got))
			}
			var unlocked *models.Achievement
			for i := range got {
				if got[i].ID == "first-habit" {
					unlocked = &got[i]
				}
			}
			if unlocked == nil || !unlocked.Unlocked {
				t.Fatalf("Expected first-habit unlocked, got %v", got)
			}
			if unlocked.UnlockedAt == nil || !unlocked.UnlockedAt.Equal(unlockedAt) {
				t.Errorf("Expected unlock timestamp preserved, got %v", unlocked.UnlockedAt)
			}
		})
	}
}

func TestPreferencesDefaultsAndSave(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			prefs, err := store.GetPreferences()
			if err != nil {
				t.Fatalf("GetPreferences failed: %v", err)
			}
			if prefs.DarkMode {
				t.Error("Expected dark mode off by default")
			}

			prefs.DarkMode = true
			prefs.DefaultReminderTime = "21:00"
			if err := store.SavePreferences(prefs); err != nil {
				t.Fatalf("SavePreferences failed: %v", err)
			}

			got, err := store.GetPreferences()
			if err != nil {
				t.Fatal(err)
			}
			if !got.DarkMode || got.DefaultReminderTime != "21:00" {
				t.Errorf("Unexpected preferences after save: %+v", got)
			}
		})
	}
}

func TestLoadBeforeInitFails(t *testing.T) {
	dir := t.TempDir()

	sqlite := NewSQLiteStore(filepath.Join(dir, "missing.db"))
	if err := sqlite.Load(); err == nil {
		t.Error("Expected sqlite Load to fail before init")
	}

	jsonStore := NewJSONStore(filepath.Join(dir, "missing.json"))
	if err := jsonStore.Load(); err == nil {
		t.Error("Expected json Load to fail before init")
	}
}

func TestInitAppliesEmbeddedMigrations(t *testing.T) {
	dir := t.TempDir()

	store := NewSQLiteStore(filepath.Join(dir, "habits.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runner := migration.NewRunner(store.GetDB(), MigrationsFS())

	current, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if latest == 0 {
		t.Fatal("expected embedded migration files, found none")
	}
	if current != latest {
		t.Errorf("expected schema version %d after Init, got %d", latest, current)
	}

	// Re-running Init on an up-to-date database must be a no-op.
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
}

func TestLoadRejectsNewerSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habits.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init sqlite store: %v", err)
	}
	if _, err := store.GetDB().Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetDB().Exec("INSERT INTO schema_version (version) VALUES (999)"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err == nil {
		t.Error("expected Load to reject a database with a newer schema version")
	}
	reopened.Close()
}
