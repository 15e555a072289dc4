package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sidebar := m.renderTaskList()
	cal := m.renderCalendar()
	statusBar := m.renderStatusBar()

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, cal)

	if m.mode == ModeAddTask || m.mode == ModeEditTitle {
		modal := m.renderModal()
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp {
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m Model) renderTaskList() string {
	width := 40
	var s string

	header := "Tasks"
	if m.filter != "" {
		header = fmt.Sprintf("Tasks · %s", m.filter)
	}
	s += HeaderStyle.Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", width-4)) + "\n\n"

	if len(m.tasks) == 0 {
		s += HelpStyle.Render("  No tasks. Press 'a' to add one.")
	}

	for i, t := range m.tasks {
		cursor := "  "
		style := TaskItemStyle
		if i == m.taskCursor && m.pane == PaneTasks {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}

		marker := categoryStyle(t.Category).Render("▍")
		title := truncate(t.Title, width-12)
		line := style.Render(cursor + title)
		if t.IsPriority {
			line += " " + PriorityStyle.Render("▲")
		}
		s += marker + line + "\n"

		meta := string(t.Category)
		if t.DueDate != nil {
			meta += " · " + t.DueDate.Format("02.01.2006")
			if t.IsAllDay {
				meta += " (all day)"
			} else if t.Duration > 0 {
				meta += fmt.Sprintf(" (%gh)", t.Duration)
			}
		}
		s += "  " + HelpStyle.Render(meta) + "\n"
	}

	return SidebarStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderCalendar() string {
	width := m.width - 44
	if width < 30 {
		width = 30
	}
	var s string

	weekEnd := m.weekStart.AddDate(0, 0, 6)
	header := fmt.Sprintf("Week %s – %s",
		m.weekStart.Format("Jan 2"), weekEnd.Format("Jan 2"))
	s += HeaderStyle.Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", width-6)) + "\n\n"

	now := time.Now()
	eventIdx := 0
	for d := 0; d < 7; d++ {
		day := m.weekStart.AddDate(0, 0, d)

		dayStyle := DayHeaderStyle
		if sameDay(day, now) {
			dayStyle = TodayHeaderStyle
		}
		s += dayStyle.Render(day.Format("Mon 02.01")) + "\n"

		hasEvents := false
		for ; eventIdx < len(m.events) && sameDay(m.events[eventIdx].Start, day); eventIdx++ {
			e := m.events[eventIdx]
			hasEvents = true

			cursor := "  "
			style := TaskItemStyle
			if eventIdx == m.eventCursor && m.pane == PaneCalendar {
				cursor = "❯ "
				style = TaskItemSelectedStyle
			}

			window := "all day    "
			if !e.AllDay {
				window = e.Start.Format("15:04")
				if e.HasEnd() {
					window += "–" + e.End.Format("15:04")
				} else {
					window += "      "
				}
			}

			line := categoryStyle(e.Category).Render("▍") +
				style.Render(fmt.Sprintf("%s%-12s %s", cursor, window, truncate(e.Title, width-24)))
			if e.IsPriority {
				line += " " + PriorityStyle.Render("▲")
			}
			s += line + "\n"
		}
		if !hasEvents {
			s += HelpStyle.Render("  ·") + "\n"
		}
	}

	return CalendarStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderStatusBar() string {
	help := "tab:pane  a:add  e:edit  d:del  p:priority  t:today  c:category  f:filter  [/]:week  ?:help  q:quit"
	if m.pane == PaneCalendar {
		help = "H/L:move day  J/K:move 30min  +/-:resize  A:all-day  [/]:week  tab:pane  q:quit"
	}
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderModal() string {
	title := "Add Task"
	if m.mode == ModeEditTitle {
		title = "Edit Title"
	}
	if m.mode == ModeAddTask && m.filter != "" {
		title = fmt.Sprintf("Add Task · %s", m.filter)
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += HelpStyle.Render("Enter:save  Esc:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭────── Keyboard Shortcuts ──────╮
│                                │
│  Navigation                    │
│  ──────────                    │
│  j/↓ k/↑  Move cursor          │
│  tab      Switch pane          │
│  [ ]      Previous/next week   │
│                                │
│  Task list                     │
│  ─────────                     │
│  a        Add task             │
│  e        Edit title           │
│  d        Delete               │
│  p        Toggle priority      │
│  t        Set to today         │
│  c        Cycle category       │
│  A        Toggle all-day       │
│  f        Cycle filter         │
│                                │
│  Calendar                      │
│  ────────                      │
│  H/L      Move ±1 day          │
│  J/K      Move ±30 minutes     │
│  +/-      Resize ±30 minutes   │
│  A        Toggle all-day       │
│                                │
│  ?        Toggle help          │
│  q        Quit                 │
│                                │
╰────────────────────────────────╯

       Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
