package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mmostafa1999/Habit-Tracker/internal/engine"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	partialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	plainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Underline(true)
)

type Model struct {
	viewport viewport.Model
	habits   []models.Habit
	year     int
	month    time.Month
	width    int
	height   int
}

func New(width, height int) Model {
	now := time.Now()
	return Model{
		viewport: viewport.New(width, height),
		year:     now.Year(),
		month:    now.Month(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.habits = habits
	m.Render()
}

// PrevMonth moves the view one month back.
func (m *Model) PrevMonth() {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	m.year, m.month = prev.Year(), prev.Month()
	m.Render()
}

// NextMonth moves the view one month forward.
func (m *Model) NextMonth() {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	m.year, m.month = next.Year(), next.Month()
	m.Render()
}

func (m *Model) Render() {
	completed, partial := engine.MonthSummary(m.habits, m.year, m.month)
	completedSet := make(map[int]bool, len(completed))
	for _, d := range completed {
		completedSet[d] = true
	}
	partialSet := make(map[int]bool, len(partial))
	for _, d := range partial {
		partialSet[d] = true
	}

	now := time.Now()
	todayDay := 0
	if now.Year() == m.year && now.Month() == m.month {
		todayDay = now.Day()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", m.month, m.year)))
	b.WriteString("\n\n")
	b.WriteString(weekdayStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(m.year, m.month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	b.WriteString(strings.Repeat("    ", int(first.Weekday())))
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf(" %2d ", day)
		switch {
		case day == todayDay:
			cell = todayStyle.Render(cell)
		case completedSet[day]:
			cell = completedStyle.Render(cell)
		case partialSet[day]:
			cell = partialStyle.Render(cell)
		default:
			cell = plainStyle.Render(cell)
		}
		b.WriteString(cell)
		if (int(first.Weekday())+day)%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(weekdayStyle.Render(fmt.Sprintf(
		"%s all done   %s partly done   ←/→ change month",
		completedStyle.Render("■"), partialStyle.Render("■"))))

	m.viewport.SetContent(b.String())
}
