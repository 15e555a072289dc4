package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/calendar"
	"github.com/existflow/weekdeck/internal/config"
	"github.com/existflow/weekdeck/internal/logger"
	"github.com/existflow/weekdeck/internal/model"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneTasks Pane = iota
	PaneCalendar
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeEditTitle
	ModeHelp
)

// Model is the main TUI model. The board is the single mutation path;
// the task list and the calendar pane are two read-only views over it.
type Model struct {
	board *board.Board
	cfg   *config.Config

	// Snapshots rebuilt after every transaction
	tasks  []model.Task     // ordered, filtered list view
	events []calendar.Event // current week, sorted by start

	// UI state
	width       int
	height      int
	pane        Pane
	mode        Mode
	taskCursor  int
	eventCursor int
	weekStart   time.Time

	// Category filter ("" = all)
	filter model.Category

	// Input
	input textinput.Model

	message string
}

// NewModel creates a new TUI model
func NewModel(b *board.Board, cfg *config.Config) Model {
	logger.Info("Initializing TUI model")

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter task..."
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		board:     b,
		cfg:       cfg,
		pane:      PaneTasks,
		mode:      ModeNormal,
		input:     ti,
		weekStart: calendar.StartOfWeek(time.Now()),
	}

	m.loadData()
	logger.Debug("TUI model initialized", logger.F("tasks", len(m.tasks)))
	return m
}

// loadData rebuilds both view snapshots from the board.
func (m *Model) loadData() {
	ordered := m.board.Ordered()
	if m.filter == "" {
		m.tasks = ordered
	} else {
		m.tasks = m.tasks[:0]
		for _, t := range ordered {
			if t.Category == m.filter {
				m.tasks = append(m.tasks, t)
			}
		}
	}
	if m.taskCursor >= len(m.tasks) && m.taskCursor > 0 {
		m.taskCursor = len(m.tasks) - 1
	}

	weekEnd := m.weekStart.AddDate(0, 0, 7)
	m.events = m.events[:0]
	for _, e := range calendar.Project(m.board.Tasks()) {
		if !e.Start.Before(m.weekStart) && e.Start.Before(weekEnd) {
			m.events = append(m.events, e)
		}
	}
	sort.SliceStable(m.events, func(i, j int) bool {
		a, b := m.events[i], m.events[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.Title < b.Title
	})
	if m.eventCursor >= len(m.events) && m.eventCursor > 0 {
		m.eventCursor = len(m.events) - 1
	}
}

func (m *Model) currentTask() *model.Task {
	if m.taskCursor < len(m.tasks) {
		return &m.tasks[m.taskCursor]
	}
	return nil
}

func (m *Model) currentEvent() *calendar.Event {
	if m.eventCursor < len(m.events) {
		return &m.events[m.eventCursor]
	}
	return nil
}

