package board

import (
	"testing"
	"time"

	"github.com/existflow/weekdeck/internal/model"
)

var testNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.Local)

func timedTask(due time.Time, duration float64) model.Task {
	t := model.NewTask("id-1", "Test task")
	t.DueDate = &due
	t.Duration = duration
	return t
}

func applyNormalized(t model.Task, c Change) model.Task {
	return normalize(c.Apply(t, testNow))
}

func TestSetDatePreservesTime(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 15, 0, 0, time.Local)
	task := timedTask(due, 2)

	got := applyNormalized(task, SetDate{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)})

	want := time.Date(2024, 3, 5, 9, 15, 0, 0, time.Local)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, want)
	}
	if got.Duration != 2 {
		t.Errorf("Duration: got %v, want 2", got.Duration)
	}
}

func TestSetDateDefaultsToNine(t *testing.T) {
	task := model.NewTask("id-1", "Test task")
	task.DueDate = nil

	got := applyNormalized(task, SetDate{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)})

	want := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, want)
	}
}

func TestSetDateClearDropsDuration(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := timedTask(due, 2)

	got := applyNormalized(task, SetDate{Clear: true})

	if got.DueDate != nil {
		t.Errorf("DueDate: got %v, want nil", got.DueDate)
	}
	if got.Duration != 0 {
		t.Errorf("Duration: got %v, want 0 after clearing the date", got.Duration)
	}
}

func TestSetDateOnAllDayTask(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	task := timedTask(due, 0)
	task.IsAllDay = true

	got := applyNormalized(task, SetDate{Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)})

	want := time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate: got %v, want %v (midnight preserved)", got.DueDate, want)
	}
	if !got.IsAllDay || got.Duration != 0 {
		t.Errorf("got IsAllDay=%v Duration=%v, want all-day without duration", got.IsAllDay, got.Duration)
	}
}

func TestSetClockKeepsDate(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := timedTask(due, 1)

	got := applyNormalized(task, SetClock{Hour: 16, Minute: 45})

	want := time.Date(2024, 3, 1, 16, 45, 0, 0, time.Local)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, want)
	}
}

func TestSetClockOnUnscheduledUsesToday(t *testing.T) {
	task := model.NewTask("id-1", "Test task")
	task.DueDate = nil

	got := applyNormalized(task, SetClock{Hour: 8, Minute: 0})

	want := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 8, 0, 0, 0, time.Local)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, want)
	}
}

func TestSetClockIgnoredOnAllDay(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	task := timedTask(due, 0)
	task.IsAllDay = true

	got := applyNormalized(task, SetClock{Hour: 16, Minute: 0})

	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate: got %v, want unchanged %v", got.DueDate, due)
	}
}

// Toggling all-day on drops the duration and strips the time component.
func TestToggleAllDayOn(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := timedTask(due, 2)

	got := applyNormalized(task, SetAllDay{AllDay: true})

	if !got.IsAllDay {
		t.Error("IsAllDay: got false, want true")
	}
	if got.Duration != 0 {
		t.Errorf("Duration: got %v, want 0", got.Duration)
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, want)
	}
}

func TestToggleAllDayOffDefaultsDuration(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	task := timedTask(due, 0)
	task.IsAllDay = true

	got := applyNormalized(task, SetAllDay{AllDay: false})

	if got.IsAllDay {
		t.Error("IsAllDay: got true, want false")
	}
	if got.Duration != model.DefaultDuration {
		t.Errorf("Duration: got %v, want default %v", got.Duration, model.DefaultDuration)
	}
}

func TestSetDurationCoercion(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"valid", 2.5, 2.5},
		{"rounded to half hour", 1.7, 1.5},
		{"zero coerced", 0, 1},
		{"negative coerced", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyNormalized(timedTask(due, 1), SetDuration{Hours: tt.hours})
			if got.Duration != tt.want {
				t.Errorf("Duration: got %v, want %v", got.Duration, tt.want)
			}
		})
	}
}

func TestSetDurationIgnoredOnAllDay(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	task := timedTask(due, 0)
	task.IsAllDay = true

	got := applyNormalized(task, SetDuration{Hours: 2})

	if got.Duration != 0 {
		t.Errorf("Duration: got %v, want 0 on all-day task", got.Duration)
	}
}

func TestSetCategoryRederivesColor(t *testing.T) {
	task := model.NewTask("id-1", "Test task")

	got := applyNormalized(task, SetCategory{Category: model.CategoryWork})

	if got.Category != model.CategoryWork {
		t.Errorf("Category: got %q, want Work", got.Category)
	}
	if got.Color != model.ColorFor(model.CategoryWork) {
		t.Errorf("Color: got %q, want %q", got.Color, model.ColorFor(model.CategoryWork))
	}
}

func TestSetTitleBlankKeepsPrevious(t *testing.T) {
	task := model.NewTask("id-1", "Original")

	got := applyNormalized(task, SetTitle{Title: ""})

	if got.Title != "Original" {
		t.Errorf("Title: got %q, want %q", got.Title, "Original")
	}
}

// "Set to today" always produces an all-day task at today's midnight,
// even for a precisely timed task with a duration.
func TestSetToday(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	task := timedTask(due, 3)

	got := applyNormalized(task, SetToday{})

	want := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.Local)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, want)
	}
	if !got.IsAllDay {
		t.Error("IsAllDay: got false, want true")
	}
	if got.Duration != 0 {
		t.Errorf("Duration: got %v, want 0", got.Duration)
	}
}

// Every field change keeps the scheduling invariants: an all-day or
// unscheduled task never carries a duration, and any duration is a
// positive multiple of half an hour.
func TestChangesPreserveInvariants(t *testing.T) {
	due := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	starts := []model.Task{
		timedTask(due, 2),
		timedTask(due, 0),
		func() model.Task { x := timedTask(due, 0); x.IsAllDay = true; return x }(),
		func() model.Task { x := model.NewTask("id-2", "Unscheduled"); x.DueDate = nil; return x }(),
	}
	changes := []Change{
		SetDate{Date: due},
		SetDate{Clear: true},
		SetClock{Hour: 12, Minute: 30},
		SetAllDay{AllDay: true},
		SetAllDay{AllDay: false},
		SetDuration{Hours: 2.25},
		SetDuration{Hours: -1},
		SetCategory{Category: model.CategoryBacklog},
		SetTitle{Title: "x"},
		SetDescription{Description: "y"},
		SetPriority{Priority: true},
		SetToday{},
	}

	for _, start := range starts {
		for _, ch := range changes {
			got := applyNormalized(start, ch)
			if got.IsAllDay && got.Duration != 0 {
				t.Errorf("%T on %+v: all-day task kept duration %v", ch, start, got.Duration)
			}
			if got.DueDate == nil && got.Duration != 0 {
				t.Errorf("%T on %+v: unscheduled task kept duration %v", ch, start, got.Duration)
			}
			if got.Duration != 0 {
				if got.Duration < 0.5 || got.Duration != float64(int(got.Duration*2))/2 {
					t.Errorf("%T on %+v: duration %v off the half-hour grid", ch, start, got.Duration)
				}
			}
			if got.Color != model.ColorFor(got.Category) {
				t.Errorf("%T on %+v: color %q stale for category %q", ch, start, got.Color, got.Category)
			}
		}
	}
}
