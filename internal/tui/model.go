package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Mmostafa1999/Habit-Tracker/internal/achievements"
	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
	"github.com/Mmostafa1999/Habit-Tracker/internal/storage"
	"github.com/Mmostafa1999/Habit-Tracker/internal/tui/components/calendar"
	"github.com/Mmostafa1999/Habit-Tracker/internal/tui/components/habitlist"
	"github.com/Mmostafa1999/Habit-Tracker/internal/tui/components/trophies"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateAchievements
	StateAddHabit
	StateConfirmDelete
)

// tabCount is the number of cycleable tabs; modal states come after.
const tabCount = 3

type HabitFormModel struct {
	Name        string
	Description string
	Frequency   models.Frequency
	Weekdays    []int
	Category    string
}

type Model struct {
	store           storage.Provider
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitList       habitlist.Model
	calendarModel   calendar.Model
	trophiesModel   trophies.Model
	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDeleteID string
	celebration     string
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider) Model {
	today := time.Now()

	habits, err := store.GetAllHabits()
	if err != nil {
		habits = []models.Habit{}
	}

	hl := habitlist.New(engine.DueOn(habits, today), today, 0, 0)
	cm := calendar.New(0, 0)
	cm.SetHabits(habits)
	tm := trophies.New(0, 0)
	if stored, err := store.GetAchievements(); err == nil {
		// Merge stored state with the full catalog so locked achievements
		// show up even on a fresh store.
		tm.SetAchievements(achievements.Evaluate(stored, habits, today))
	}

	m := Model{
		store:         store,
		state:         StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		habitList:     hl,
		calendarModel: cm,
		trophiesModel: tm,
	}

	if engine.AllDueCompleted(habits, today) {
		m.celebration = "All habits done for today — great job! 🎉"
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.Delete)
	case StateCalendar:
		keys = append(keys, m.keys.Left, m.keys.Right)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateToday {
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads habits from the store into every component and recomputes
// the celebration banner.
func (m *Model) refresh() {
	today := time.Now()

	habits, err := m.store.GetAllHabits()
	if err != nil {
		return
	}

	m.habitList.SetHabits(engine.DueOn(habits, today), today)
	m.calendarModel.SetHabits(habits)
	if stored, err := m.store.GetAchievements(); err == nil {
		m.trophiesModel.SetAchievements(achievements.Evaluate(stored, habits, today))
	}

	if engine.AllDueCompleted(habits, today) {
		m.celebration = "All habits done for today — great job! 🎉"
	} else {
		m.celebration = ""
	}
}

func newHabitForm(form *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&form.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&form.Description),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
					huh.NewOption("Monthly", models.FrequencyMonthly),
				).
				Value(&form.Frequency),
			huh.NewMultiSelect[int]().
				Title("Weekdays (weekly habits)").
				Options(
					huh.NewOption("Sunday", 0),
					huh.NewOption("Monday", 1),
					huh.NewOption("Tuesday", 2),
					huh.NewOption("Wednesday", 3),
					huh.NewOption("Thursday", 4),
					huh.NewOption("Friday", 5),
					huh.NewOption("Saturday", 6),
				).
				Value(&form.Weekdays),
		),
	)
}
