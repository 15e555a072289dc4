package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/weekdeck/internal/model"
)

// Color palette
var (
	Primary   = lipgloss.Color("#4ECDC4")
	Flame     = lipgloss.Color("#FF6B6B") // priority marker
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Surface   = lipgloss.Color("#16213e")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Border).
			Padding(1, 1)

	CalendarStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TaskItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TaskItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	PriorityStyle = lipgloss.NewStyle().Foreground(Flame).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	DayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	TodayHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary)
)

// categoryStyle renders text in the task's category color.
func categoryStyle(c model.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(model.ColorFor(c)))
}
