package board

import (
	"sort"
	"strings"

	"github.com/existflow/weekdeck/internal/model"
)

// Order returns the tasks in display order: priority tasks first, then
// scheduled before unscheduled, then chronologically, then by title.
// The input slice is not mutated.
func Order(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return taskLess(out[i], out[j])
	})
	return out
}

func taskLess(a, b model.Task) bool {
	if a.IsPriority != b.IsPriority {
		return a.IsPriority
	}
	switch {
	case a.DueDate != nil && b.DueDate == nil:
		return true
	case a.DueDate == nil && b.DueDate != nil:
		return false
	case a.DueDate != nil && b.DueDate != nil:
		if !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
	}
	if a.Title != b.Title {
		return strings.Compare(a.Title, b.Title) < 0
	}
	// Total order regardless of input order.
	return a.ID < b.ID
}
