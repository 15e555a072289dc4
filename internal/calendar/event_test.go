package calendar

import (
	"testing"
	"time"

	"github.com/existflow/weekdeck/internal/model"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

func scheduled(id, title string, due time.Time, duration float64, allDay bool) model.Task {
	t := model.Task{
		ID:       id,
		Title:    title,
		Category: model.CategoryWork,
		Color:    model.ColorFor(model.CategoryWork),
		DueDate:  &due,
		Duration: duration,
		IsAllDay: allDay,
	}
	return t
}

func TestProjectOnePerScheduledTask(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	tasks := []model.Task{
		scheduled("a", "Timed", due, 2, false),
		scheduled("b", "All day", due, 0, true),
		{ID: "c", Title: "Unscheduled"},
	}

	events := Project(tasks)

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	counts := map[string]int{}
	for _, e := range events {
		counts[e.ID]++
	}
	if counts["a"] != 1 || counts["b"] != 1 {
		t.Errorf("event counts: %v, want exactly one per scheduled task", counts)
	}
	if counts["c"] != 0 {
		t.Error("unscheduled task was projected")
	}
}

func TestProjectTimedEventWindow(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	events := Project([]model.Task{scheduled("a", "Timed", due, 2.5, false)})

	e := events[0]
	if !e.Start.Equal(due) {
		t.Errorf("Start: got %v, want %v", e.Start, due)
	}
	wantEnd := due.Add(2*time.Hour + 30*time.Minute)
	if !e.End.Equal(wantEnd) {
		t.Errorf("End: got %v, want %v", e.End, wantEnd)
	}
	if e.AllDay {
		t.Error("AllDay: got true, want false")
	}
	if e.Color != model.ColorFor(model.CategoryWork) {
		t.Errorf("Color: got %q, want task color", e.Color)
	}
}

func TestProjectPointInTimeWithoutDuration(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	events := Project([]model.Task{scheduled("a", "Point", due, 0, false)})

	if events[0].HasEnd() {
		t.Errorf("End: got %v, want none", events[0].End)
	}
}

func TestProjectAllDayHasNoWindow(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	events := Project([]model.Task{scheduled("a", "All day", due, 0, true)})

	if !events[0].AllDay {
		t.Error("AllDay: got false, want true")
	}
	if events[0].HasEnd() {
		t.Error("all-day event has an explicit end")
	}
}

func TestDropMovesOnlySchedule(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := scheduled("a", "Timed", due, 2, false)
	task.IsPriority = true

	newStart := time.Date(2024, 3, 4, 11, 0, 0, 0, time.Local)
	got := Drop{EventID: "a", Start: newStart, AllDay: false}.Apply(task, now)

	if got.DueDate == nil || !got.DueDate.Equal(newStart) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, newStart)
	}
	if got.Duration != 2 {
		t.Errorf("Duration: got %v, want untouched 2", got.Duration)
	}
	if got.Title != "Timed" || got.Category != model.CategoryWork || !got.IsPriority {
		t.Error("drop touched non-scheduling fields")
	}
}

func TestDropIntoAllDaySlot(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := scheduled("a", "Timed", due, 2, false)

	newStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	got := Drop{EventID: "a", Start: newStart, AllDay: true}.Apply(task, now)

	if !got.IsAllDay {
		t.Error("IsAllDay: got false, want true")
	}
	if got.Duration != 0 {
		t.Errorf("Duration: got %v, want 0", got.Duration)
	}
}

func TestDropAllDayIntoTimedSlot(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	task := scheduled("a", "All day", due, 0, true)

	newStart := time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)
	got := Drop{EventID: "a", Start: newStart, AllDay: false}.Apply(task, now)

	if got.IsAllDay {
		t.Error("IsAllDay: got true, want false")
	}
	if got.DueDate == nil || !got.DueDate.Equal(newStart) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, newStart)
	}
	// No duration appears out of thin air; the task becomes a
	// point-in-time event.
	if got.Duration != 0 {
		t.Errorf("Duration: got %v, want 0", got.Duration)
	}
}

func TestDropKeepsPointInTime(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := scheduled("a", "Point", due, 0, false)

	newStart := time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local)
	got := Drop{EventID: "a", Start: newStart, AllDay: false}.Apply(task, now)

	if got.Duration != 0 {
		t.Errorf("Duration: got %v, want 0", got.Duration)
	}
	if Project([]model.Task{got})[0].HasEnd() {
		t.Error("moved point-in-time task projects with an end")
	}
}

func TestResizeRecomputesDuration(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := scheduled("a", "Timed", due, 2, false)

	end := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	got := Resize{EventID: "a", Start: due, End: end, AllDay: false}.Apply(task, now)

	if got.Duration != 3 {
		t.Errorf("Duration: got %v, want 3", got.Duration)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, due)
	}
}

func TestResizeSnapsToHalfHourGrid(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := scheduled("a", "Timed", due, 1, false)

	// 9:00 to 11:20 is 2h20m; the duration snaps to 2.5h.
	end := time.Date(2024, 3, 1, 11, 20, 0, 0, time.Local)
	got := Resize{EventID: "a", Start: due, End: end, AllDay: false}.Apply(task, now)

	if got.Duration != 2.5 {
		t.Errorf("Duration: got %v, want 2.5", got.Duration)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2024, 3, 6, 15, 30, 0, 0, time.Local), time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)},
		{"monday itself", time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local), time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)},
		{"sunday belongs to previous monday", time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local), time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStaleDropIgnored(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := scheduled("a", "Timed", due, 2, false)

	got := Drop{EventID: "a"}.Apply(task, now)

	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate: got %v, want unchanged %v", got.DueDate, due)
	}
}
