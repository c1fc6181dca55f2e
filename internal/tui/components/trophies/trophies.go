package trophies

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mmostafa1999/Habit-Tracker/internal/achievements"
	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

var (
	unlockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	list     []models.Achievement
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
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

func (m *Model) SetAchievements(list []models.Achievement) {
	m.list = make([]models.Achievement, len(list))
	copy(m.list, list)
	achievements.Sort(m.list)
	m.Render()
}

func (m *Model) Render() {
	var b strings.Builder

	unlocked := 0
	for _, a := range m.list {
		if a.Unlocked {
			unlocked++
		}
	}
	b.WriteString(fmt.Sprintf("Unlocked %d of %d\n\n", unlocked, len(m.list)))

	for _, a := range m.list {
		if a.Unlocked {
			when := ""
			if a.UnlockedAt != nil {
				when = " (" + a.UnlockedAt.Format("2006-01-02") + ")"
			}
			b.WriteString(unlockedStyle.Render(fmt.Sprintf("%s %s%s", a.Icon, a.Name, when)))
		} else {
			b.WriteString(lockedStyle.Render("🔒 " + a.Name))
		}
		b.WriteString("\n")
		b.WriteString(descStyle.Render("   " + a.Description))
		b.WriteString("\n\n")
	}

	m.viewport.SetContent(b.String())
}
