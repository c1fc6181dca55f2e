package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Mmostafa1999/Habit-Tracker/internal/constants"
	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
	"github.com/Mmostafa1999/Habit-Tracker/internal/validation"
)

type Store struct {
	Version      int                        `json:"version"`
	Preferences  Preferences                `json:"preferences"`
	Habits       map[string]models.Habit    `json:"habits"`
	Categories   map[string]models.Category `json:"categories"`
	Achievements []models.Achievement       `json:"achievements"`
}

type JSONStore struct {
	path      string
	store     *Store
	validator *validation.Validator
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path:      configPath,
		validator: validation.New(),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Preferences: Preferences{
			DefaultReminderTime: constants.DefaultReminderTime,
		},
		Habits:     make(map[string]models.Habit),
		Categories: make(map[string]models.Category),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habits init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.Habit)
	}
	if s.store.Categories == nil {
		s.store.Categories = make(map[string]models.Category)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetPreferences() (Preferences, error) {
	if s.store == nil {
		return Preferences{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Preferences, nil
}

func (s *JSONStore) SavePreferences(prefs Preferences) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Preferences = prefs
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}
	habit, ok := s.store.Habits[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("habit with id %s not found", id)
	}
	return engine.Sanitize(habit), nil
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}
	for _, habit := range s.store.Habits {
		if habit.Name == name {
			return engine.Sanitize(habit), nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit named %q not found", name)
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var habits []models.Habit
	for _, habit := range s.store.Habits {
		habits = append(habits, engine.Sanitize(habit))
	}
	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].Order < habits[j].Order
	})
	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.validator.ValidateHabit(habit).Err(); err != nil {
		return err
	}
	s.store.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.store.Habits[id]; !ok {
		return fmt.Errorf("habit with id %s not found", id)
	}
	delete(s.store.Habits, id)
	return s.save()
}

func (s *JSONStore) AddCategory(category models.Category) error {
	return s.UpdateCategory(category)
}

func (s *JSONStore) GetCategory(id string) (models.Category, error) {
	if s.store == nil {
		return models.Category{}, fmt.Errorf("storage not loaded")
	}
	category, ok := s.store.Categories[id]
	if !ok {
		return models.Category{}, fmt.Errorf("category with id %s not found", id)
	}
	return category, nil
}

func (s *JSONStore) GetAllCategories() ([]models.Category, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var categories []models.Category
	for _, c := range s.store.Categories {
		categories = append(categories, c)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories, nil
}

func (s *JSONStore) UpdateCategory(category models.Category) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.validator.ValidateCategory(category).Err(); err != nil {
		return err
	}
	s.store.Categories[category.ID] = category
	return s.save()
}

func (s *JSONStore) DeleteCategory(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.store.Categories[id]; !ok {
		return fmt.Errorf("category with id %s not found", id)
	}
	delete(s.store.Categories, id)

	// Clear the reference on habits that used this category
	for habitID, habit := range s.store.Habits {
		if habit.Category == id {
			habit.Category = ""
			s.store.Habits[habitID] = habit
		}
	}

	return s.save()
}

func (s *JSONStore) GetAchievements() ([]models.Achievement, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Achievements, nil
}

func (s *JSONStore) SaveAchievements(list []models.Achievement) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Achievements = list
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
