package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/Mmostafa1999/Habit-Tracker/internal/achievements"
	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
	"github.com/Mmostafa1999/Habit-Tracker/internal/tui/components/habitlist"
)

var errEmptyName = errors.New("name must not be empty")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.habitList.SetSize(msg.Width-4, contentHeight)
		m.calendarModel.SetSize(msg.Width-4, contentHeight)
		m.trophiesModel.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Frequency: models.FrequencyDaily}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAddHabit:
			return m.updateAddHabit(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}

		if m.state == StateCalendar {
			switch {
			case key.Matches(msg, m.keys.Left):
				m.calendarModel.PrevMonth()
				return m, nil
			case key.Matches(msg, m.keys.Right):
				m.calendarModel.NextMonth()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateCalendar:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
	case StateAchievements:
		m.trophiesModel, cmd = m.trophiesModel.Update(msg)
	case StateAddHabit:
		return m.updateAddHabit(msg)
	}

	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateToday
		m.form = nil
		m.habitForm = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.saveNewHabit()
		m.state = StateToday
		m.form = nil
		m.habitForm = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) saveNewHabit() {
	if m.habitForm == nil || m.habitForm.Name == "" {
		return
	}

	existing, err := m.store.GetAllHabits()
	if err != nil {
		return
	}

	var schedule []int
	if m.habitForm.Frequency == models.FrequencyWeekly {
		schedule = m.habitForm.Weekdays
	}

	now := time.Now()
	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           m.habitForm.Name,
		Description:    m.habitForm.Description,
		Frequency:      m.habitForm.Frequency,
		StartDate:      engine.Normalize(now),
		CreatedAt:      now,
		WeeklySchedule: schedule,
		Order:          len(existing),
	}

	// New habits inherit the default reminder when one is configured
	if prefs, err := m.store.GetPreferences(); err == nil && prefs.ReminderEnabled {
		habit.ReminderEnabled = true
		habit.ReminderTime = prefs.DefaultReminderTime
	}

	if err := m.store.AddHabit(habit); err != nil {
		return
	}
	m.refresh()
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.habitToDeleteID != "" {
			_ = m.store.DeleteHabit(m.habitToDeleteID)
		}
		m.habitToDeleteID = ""
		m.state = StateToday
		m.refresh()
	case "n", "N", "esc", "q":
		m.habitToDeleteID = ""
		m.state = StateToday
	}
	return m, nil
}

// toggleHabit flips today's completion for the habit and re-evaluates
// achievements against the new state.
func (m *Model) toggleHabit(id string) {
	h, err := m.store.GetHabit(id)
	if err != nil {
		return
	}

	now := time.Now()
	updated := engine.ToggleCompletion(h, now, now)
	if err := m.store.UpdateHabit(updated); err != nil {
		return
	}

	habits, err := m.store.GetAllHabits()
	if err == nil {
		if stored, err := m.store.GetAchievements(); err == nil {
			evaluated := achievements.Evaluate(stored, habits, now)
			_ = m.store.SaveAchievements(evaluated)
		}
	}

	m.refresh()
}
