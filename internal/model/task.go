package model

import "time"

// Default duration in hours applied when a task becomes a timed event
// without an explicit duration.
const DefaultDuration = 1.0

// DurationStep is the scheduling granularity in hours.
const DurationStep = 0.5

// Task represents a single schedulable item. The same record backs both
// the sidebar list and the calendar view.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category"`
	Color       string     `json:"color"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Duration    float64    `json:"duration,omitempty"` // hours, 0 = no duration
	IsAllDay    bool       `json:"is_all_day"`
	IsPriority  bool       `json:"is_priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new task with defaults: Personal category, timed
// (not all-day), due today.
func NewTask(id, title string) Task {
	now := time.Now()
	due := now
	return Task{
		ID:        id,
		Title:     title,
		Category:  CategoryPersonal,
		Color:     ColorFor(CategoryPersonal),
		DueDate:   &due,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsScheduled returns true if the task has a due date.
func (t *Task) IsScheduled() bool {
	return t.DueDate != nil
}

// IsDue returns true if the task is due today or overdue.
func (t *Task) IsDue() bool {
	if t.DueDate == nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(today.Add(24 * time.Hour))
}

// IsOverdue returns true if the task is past its due date.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(today)
}

// RoundDuration snaps a duration in hours to the nearest half hour.
// Non-positive and non-finite inputs coerce to DefaultDuration; the
// result never drops below DurationStep.
func RoundDuration(hours float64) float64 {
	if !(hours > 0) { // catches NaN too
		hours = DefaultDuration
	}
	steps := int(hours/DurationStep + 0.5)
	if steps < 1 {
		steps = 1
	}
	return float64(steps) * DurationStep
}
