package board

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/existflow/weekdeck/internal/logger"
	"github.com/existflow/weekdeck/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned by a Store when an id is unknown.
var ErrNotFound = errors.New("task not found")

// Store is the persistence collaborator behind a board. Implementations
// are the local SQLite database and the remote REST client.
type Store interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Board owns the in-memory task collection and is the only mutation
// path for it. Every mutation commits to memory first and then pushes
// to the store; the in-memory state stays the render source of truth
// even when the push fails (last-write-wins on the next push).
//
// Mutations replace the collection wholesale, so slices handed out
// before a transaction are never observed half-updated.
type Board struct {
	tasks []model.Task
	store Store
	now   func() time.Time
}

// New creates a board backed by the given store. A nil store is valid
// and keeps the board purely in-memory.
func New(store Store) *Board {
	return &Board{store: store, now: time.Now}
}

// Load replaces the collection with the store's contents.
func (b *Board) Load(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	tasks, err := b.store.ListTasks(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		tasks[i] = normalize(tasks[i])
	}
	b.tasks = tasks
	return nil
}

// Tasks returns a snapshot of the collection.
func (b *Board) Tasks() []model.Task {
	out := make([]model.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Ordered returns the collection in display order.
func (b *Board) Ordered() []model.Task {
	return Order(b.tasks)
}

// Get looks up a task by id.
func (b *Board) Get(id string) (model.Task, bool) {
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Find looks up a task by id prefix. Returns false unless exactly one
// task matches.
func (b *Board) Find(prefix string) (model.Task, bool) {
	var match model.Task
	found := 0
	for _, t := range b.tasks {
		if strings.HasPrefix(t.ID, prefix) {
			match = t
			found++
		}
	}
	return match, found == 1
}

// Add creates a task with a fresh id and appends it. A blank title is
// silently ignored (ok=false, no error). The returned error reports
// store failures only; the in-memory add has already committed.
func (b *Board) Add(ctx context.Context, title string, category model.Category) (model.Task, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false, nil
	}

	t := model.NewTask(uuid.New().String(), title)
	t = SetCategory{Category: category}.Apply(t, b.now())
	t = normalize(t)

	b.commit(append(b.Tasks(), t))

	if b.store == nil {
		return t, true, nil
	}
	stored, err := b.store.CreateTask(ctx, t)
	if err != nil {
		logger.Error("Failed to persist new task", logger.F("id", t.ID), logger.F("error", err))
		return t, true, err
	}
	return stored, true, nil
}

// Update replaces the task whose id matches, leaving every other task
// untouched. An unknown id is a no-op (stale reference), not an error.
func (b *Board) Update(ctx context.Context, task model.Task) (model.Task, bool, error) {
	idx := b.index(task.ID)
	if idx < 0 {
		return model.Task{}, false, nil
	}
	task = normalize(task)
	task.UpdatedAt = b.now()

	next := b.Tasks()
	next[idx] = task
	b.commit(next)

	return task, true, b.push(ctx, task)
}

// Edit applies a single field change to the task with the given id and
// commits the normalized result atomically.
func (b *Board) Edit(ctx context.Context, id string, change Change) (model.Task, bool, error) {
	idx := b.index(id)
	if idx < 0 {
		return model.Task{}, false, nil
	}
	t := normalize(change.Apply(b.tasks[idx], b.now()))
	t.UpdatedAt = b.now()

	next := b.Tasks()
	next[idx] = t
	b.commit(next)

	return t, true, b.push(ctx, t)
}

// Delete removes the task with the given id. An unknown id is a no-op.
func (b *Board) Delete(ctx context.Context, id string) (bool, error) {
	idx := b.index(id)
	if idx < 0 {
		return false, nil
	}

	next := make([]model.Task, 0, len(b.tasks)-1)
	next = append(next, b.tasks[:idx]...)
	next = append(next, b.tasks[idx+1:]...)
	b.commit(next)

	if b.store == nil {
		return true, nil
	}
	if err := b.store.DeleteTask(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		logger.Error("Failed to delete task from store", logger.F("id", id), logger.F("error", err))
		return true, err
	}
	return true, nil
}

func (b *Board) index(id string) int {
	for i, t := range b.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) commit(next []model.Task) {
	b.tasks = next
}

func (b *Board) push(ctx context.Context, t model.Task) error {
	if b.store == nil {
		return nil
	}
	if _, err := b.store.UpdateTask(ctx, t); err != nil {
		if errors.Is(err, ErrNotFound) {
			// The store lost the row; recreate it so the next push wins.
			if _, cerr := b.store.CreateTask(ctx, t); cerr == nil {
				return nil
			}
		}
		logger.Error("Failed to persist task update", logger.F("id", t.ID), logger.F("error", err))
		return err
	}
	return nil
}
