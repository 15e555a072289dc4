package board

import (
	"time"

	"github.com/existflow/weekdeck/internal/model"
)

// Change is a single-field edit applied to a task inside a transaction.
// Apply computes the edited task from the previous value; the board runs
// normalize over the result, so a Change never has to re-establish the
// scheduling invariants itself.
type Change interface {
	Apply(t model.Task, now time.Time) model.Task
}

// SetDate changes the calendar-date portion of the due date. The
// time-of-day of a timed task is preserved across the edit; a task
// without a prior time defaults to 09:00. Clear drops the due date
// entirely (and with it the duration).
type SetDate struct {
	Date  time.Time
	Clear bool
}

func (c SetDate) Apply(t model.Task, now time.Time) model.Task {
	if c.Clear {
		t.DueDate = nil
		return t
	}
	hour, min := 9, 0
	if t.IsAllDay {
		hour, min = 0, 0
	} else if t.DueDate != nil {
		hour, min = t.DueDate.Hour(), t.DueDate.Minute()
	}
	due := time.Date(c.Date.Year(), c.Date.Month(), c.Date.Day(), hour, min, 0, 0, now.Location())
	t.DueDate = &due
	return t
}

// SetClock changes the time-of-day, keeping the existing date (or
// today's date if the task was unscheduled). Not applicable to all-day
// tasks; those pass through unchanged.
type SetClock struct {
	Hour   int
	Minute int
}

func (c SetClock) Apply(t model.Task, now time.Time) model.Task {
	if t.IsAllDay {
		return t
	}
	base := now
	if t.DueDate != nil {
		base = *t.DueDate
	}
	due := time.Date(base.Year(), base.Month(), base.Day(), c.Hour, c.Minute, 0, 0, now.Location())
	t.DueDate = &due
	return t
}

// SetAllDay toggles the all-day flag. Turning it on keeps the date but
// strips the time component; turning it off gives the task a default
// duration if it has none.
type SetAllDay struct {
	AllDay bool
}

func (c SetAllDay) Apply(t model.Task, now time.Time) model.Task {
	t.IsAllDay = c.AllDay
	if c.AllDay {
		if t.DueDate != nil {
			d := *t.DueDate
			due := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
			t.DueDate = &due
		}
		t.Duration = 0
		return t
	}
	if t.Duration == 0 {
		t.Duration = model.DefaultDuration
	}
	return t
}

// SetDuration changes the duration in hours. Invalid input is coerced,
// never rejected. Ignored while the task is all-day.
type SetDuration struct {
	Hours float64
}

func (c SetDuration) Apply(t model.Task, now time.Time) model.Task {
	if t.IsAllDay {
		return t
	}
	t.Duration = model.RoundDuration(c.Hours)
	return t
}

// SetCategory changes the category and re-derives the color in the same
// transaction so the two are never persisted out of step.
type SetCategory struct {
	Category model.Category
}

func (c SetCategory) Apply(t model.Task, now time.Time) model.Task {
	t.Category = c.Category
	t.Color = model.ColorFor(c.Category)
	return t
}

// SetTitle changes the title. A blank title leaves the previous one in
// place.
type SetTitle struct {
	Title string
}

func (c SetTitle) Apply(t model.Task, now time.Time) model.Task {
	if c.Title != "" {
		t.Title = c.Title
	}
	return t
}

// SetDescription changes the free-text description.
type SetDescription struct {
	Description string
}

func (c SetDescription) Apply(t model.Task, now time.Time) model.Task {
	t.Description = c.Description
	return t
}

// SetPriority changes the priority flag.
type SetPriority struct {
	Priority bool
}

func (c SetPriority) Apply(t model.Task, now time.Time) model.Task {
	t.IsPriority = c.Priority
	return t
}

// SetToday is the "set to today" shortcut: due today at midnight as an
// all-day task, dropping any previous time and duration. This always
// produces an all-day task, even for a precisely timed one.
type SetToday struct{}

func (c SetToday) Apply(t model.Task, now time.Time) model.Task {
	due := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	t.DueDate = &due
	t.IsAllDay = true
	t.Duration = 0
	return t
}

// normalize re-establishes the scheduling invariants after any edit:
// all-day tasks and unscheduled tasks carry no duration, and a duration,
// if present, is a positive multiple of half an hour.
func normalize(t model.Task) model.Task {
	if t.IsAllDay || t.DueDate == nil {
		t.Duration = 0
	}
	if t.Duration != 0 {
		t.Duration = model.RoundDuration(t.Duration)
	}
	t.Color = model.ColorFor(t.Category)
	return t
}
