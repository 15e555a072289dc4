package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/calendar"
	"github.com/existflow/weekdeck/internal/logger"
	"github.com/existflow/weekdeck/internal/model"
)

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddTask, ModeEditTitle:
			return m.updateInput(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		if m.pane == PaneCalendar {
			if handled, next, cmd := m.handleCalendarKeys(msg); handled {
				return next, cmd
			}
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneTasks {
			m.pane = PaneCalendar
		} else {
			m.pane = PaneTasks
		}

	case key.Matches(msg, keys.Up):
		if m.pane == PaneTasks {
			if m.taskCursor > 0 {
				m.taskCursor--
			}
		} else if m.eventCursor > 0 {
			m.eventCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.pane == PaneTasks {
			if m.taskCursor < len(m.tasks)-1 {
				m.taskCursor++
			}
		} else if m.eventCursor < len(m.events)-1 {
			m.eventCursor++
		}

	case key.Matches(msg, keys.PrevWeek):
		m.weekStart = m.weekStart.AddDate(0, 0, -7)
		m.eventCursor = 0
		m.loadData()

	case key.Matches(msg, keys.NextWeek):
		m.weekStart = m.weekStart.AddDate(0, 0, 7)
		m.eventCursor = 0
		m.loadData()

	case key.Matches(msg, keys.Add):
		m.mode = ModeAddTask
		m.input.SetValue("")
		m.input.Placeholder = "Enter task..."
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Edit):
		if task := m.currentTask(); task != nil && m.pane == PaneTasks {
			m.mode = ModeEditTitle
			m.input.SetValue(task.Title)
			m.input.Placeholder = "Edit title..."
			m.input.Focus()
			m.input.CursorEnd()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Delete):
		if task := m.currentTask(); task != nil && m.pane == PaneTasks {
			if _, err := m.board.Delete(context.Background(), task.ID); err != nil {
				m.message = fmt.Sprintf("Save failed: %v", err)
			} else {
				m.message = fmt.Sprintf("Deleted: %s", task.Title)
			}
			m.loadData()
		}

	case key.Matches(msg, keys.Priority):
		if task := m.currentTask(); task != nil && m.pane == PaneTasks {
			m.applyChange(task.ID, board.SetPriority{Priority: !task.IsPriority})
		}

	case key.Matches(msg, keys.Today):
		if task := m.currentTask(); task != nil && m.pane == PaneTasks {
			m.applyChange(task.ID, board.SetToday{})
			m.weekStart = calendar.StartOfWeek(time.Now())
			m.loadData()
		}

	case key.Matches(msg, keys.Category):
		if task := m.currentTask(); task != nil && m.pane == PaneTasks {
			m.applyChange(task.ID, board.SetCategory{Category: nextCategory(task.Category)})
		}

	case key.Matches(msg, keys.AllDay):
		if task := m.currentTask(); task != nil && m.pane == PaneTasks {
			m.applyChange(task.ID, board.SetAllDay{AllDay: !task.IsAllDay})
		}

	case key.Matches(msg, keys.Filter):
		m.filter = nextFilter(m.filter)
		m.taskCursor = 0
		m.loadData()
		if m.filter == "" {
			m.message = "Filter: all categories"
		} else {
			m.message = fmt.Sprintf("Filter: %s", m.filter)
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

// handleCalendarKeys maps key presses on the calendar pane to drop and
// resize interactions. Only the selected event's task is touched.
func (m *Model) handleCalendarKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	ev := m.currentEvent()
	if ev == nil {
		return false, *m, nil
	}

	switch {
	case key.Matches(msg, keys.DayBack):
		m.drop(ev, ev.Start.AddDate(0, 0, -1), ev.AllDay)

	case key.Matches(msg, keys.DayFwd):
		m.drop(ev, ev.Start.AddDate(0, 0, 1), ev.AllDay)

	case key.Matches(msg, keys.TimeBack):
		if ev.AllDay {
			return true, *m, nil
		}
		m.drop(ev, ev.Start.Add(-30*time.Minute), false)

	case key.Matches(msg, keys.TimeFwd):
		if ev.AllDay {
			return true, *m, nil
		}
		m.drop(ev, ev.Start.Add(30*time.Minute), false)

	case key.Matches(msg, keys.Grow):
		m.resize(ev, 30*time.Minute)

	case key.Matches(msg, keys.Shrink):
		m.resize(ev, -30*time.Minute)

	case key.Matches(msg, keys.AllDay):
		start := ev.Start
		if ev.AllDay {
			// Back to a timed slot at the configured start of day.
			start = time.Date(start.Year(), start.Month(), start.Day(),
				m.cfg.DayStartHour, 0, 0, 0, start.Location())
		}
		m.drop(ev, start, !ev.AllDay)

	default:
		return false, *m, nil
	}

	return true, *m, nil
}

// drop applies a calendar drop interaction for the event's task.
func (m *Model) drop(ev *calendar.Event, start time.Time, allDay bool) {
	m.applyChange(ev.ID, calendar.Drop{EventID: ev.ID, Start: start, AllDay: allDay})
}

// resize stretches or shrinks the event window by delta.
func (m *Model) resize(ev *calendar.Event, delta time.Duration) {
	if ev.AllDay {
		return
	}
	end := ev.End
	if !ev.HasEnd() {
		end = ev.Start.Add(time.Duration(model.DefaultDuration * float64(time.Hour)))
	}
	end = end.Add(delta)
	if !end.After(ev.Start) {
		return
	}
	m.applyChange(ev.ID, calendar.Resize{EventID: ev.ID, Start: ev.Start, End: end, AllDay: false})
}

// applyChange runs one transaction and refreshes both views.
func (m *Model) applyChange(id string, change board.Change) {
	_, ok, err := m.board.Edit(context.Background(), id, change)
	if err != nil {
		m.message = fmt.Sprintf("Save failed: %v", err)
	} else if !ok {
		logger.Warn("Edit targeted unknown task", logger.F("id", id))
	} else {
		m.message = ""
	}
	m.loadData()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		ctx := context.Background()

		switch m.mode {
		case ModeAddTask:
			category := m.filter
			if category == "" {
				category = model.CategoryPersonal
			}
			task, ok, err := m.board.Add(ctx, value, category)
			if err != nil {
				m.message = fmt.Sprintf("Save failed: %v", err)
			} else if ok {
				m.message = fmt.Sprintf("Added: %s", task.Title)
			}
			// A blank title is silently ignored.
		case ModeEditTitle:
			if task := m.currentTask(); task != nil {
				m.applyChange(task.ID, board.SetTitle{Title: value})
			}
		}

		m.loadData()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextCategory(c model.Category) model.Category {
	all := model.Categories()
	for i, cat := range all {
		if cat == c {
			return all[(i+1)%len(all)]
		}
	}
	return model.CategoryPersonal
}

// nextFilter cycles all → Personal → Uni → Work → Backlog → all.
func nextFilter(c model.Category) model.Category {
	if c == "" {
		return model.Categories()[0]
	}
	all := model.Categories()
	for i, cat := range all {
		if cat == c {
			if i == len(all)-1 {
				return ""
			}
			return all[i+1]
		}
	}
	return ""
}
