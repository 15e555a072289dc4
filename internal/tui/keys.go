package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Tab       key.Binding
	Enter     key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Priority  key.Binding
	Today     key.Binding
	Category  key.Binding
	AllDay    key.Binding
	Filter    key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	DayBack   key.Binding
	DayFwd    key.Binding
	TimeBack  key.Binding
	TimeFwd   key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Priority: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle priority")),
	Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "set to today")),
	Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle category")),
	AllDay:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "toggle all-day")),
	Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
	PrevWeek: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous week")),
	NextWeek: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next week")),
	DayBack:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "move -1 day")),
	DayFwd:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "move +1 day")),
	TimeBack: key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move -30min")),
	TimeFwd:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move +30min")),
	Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow 30min")),
	Shrink:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink 30min")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
