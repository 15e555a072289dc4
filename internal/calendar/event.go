// Package calendar projects the task collection into calendar events
// and maps calendar interactions (drop, resize) back into task edits.
package calendar

import (
	"time"

	"github.com/existflow/weekdeck/internal/model"
)

// Event is the read-only calendar view of a scheduled task.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time // zero when the event has no explicit end
	AllDay      bool
	Color       string
	Category    model.Category
	IsPriority  bool
}

// HasEnd returns true if the event has an explicit end instant. A timed
// task without a duration projects as a point-in-time event.
func (e Event) HasEnd() bool {
	return !e.End.IsZero()
}

// Project maps tasks to calendar events. Tasks without a due date are
// not represented; every scheduled task yields exactly one event.
func Project(tasks []model.Task) []Event {
	events := make([]Event, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		e := Event{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Start:       *t.DueDate,
			AllDay:      t.IsAllDay,
			Color:       t.Color,
			Category:    t.Category,
			IsPriority:  t.IsPriority,
		}
		if !t.IsAllDay && t.Duration > 0 {
			e.End = e.Start.Add(time.Duration(t.Duration * float64(time.Hour)))
		}
		events = append(events, e)
	}
	return events
}

// Drop is the result of dragging an event to a new slot. It moves the
// task's due date and all-day state and touches nothing else; a timed
// task without a duration stays a point-in-time event.
type Drop struct {
	EventID string
	Start   time.Time
	AllDay  bool
}

func (d Drop) Apply(t model.Task, now time.Time) model.Task {
	if d.Start.IsZero() {
		// Stale interaction from the calendar surface.
		return t
	}
	start := d.Start
	t.DueDate = &start
	t.IsAllDay = d.AllDay
	if d.AllDay {
		t.Duration = 0
	}
	return t
}

// StartOfWeek returns the Monday 00:00 of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Resize is the result of stretching an event's end. The duration is
// recomputed from the new window, rounded to the half-hour grid.
type Resize struct {
	EventID string
	Start   time.Time
	End     time.Time
	AllDay  bool
}

func (r Resize) Apply(t model.Task, now time.Time) model.Task {
	if r.Start.IsZero() {
		return t
	}
	start := r.Start
	t.DueDate = &start
	t.IsAllDay = r.AllDay
	if r.AllDay {
		t.Duration = 0
		return t
	}
	if r.End.After(r.Start) {
		t.Duration = model.RoundDuration(r.End.Sub(r.Start).Hours())
	}
	return t
}
