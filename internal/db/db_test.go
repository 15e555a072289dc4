package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestTaskRoundTrip(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	due := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	task := model.Task{
		ID:          "task-1",
		Title:       "Write report",
		Description: "quarterly numbers",
		Category:    model.CategoryWork,
		Color:       model.ColorFor(model.CategoryWork),
		DueDate:     &due,
		Duration:    2.5,
		IsPriority:  true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := database.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	tasks, err := database.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}

	got := tasks[0]
	if got.Title != task.Title || got.Description != task.Description {
		t.Errorf("got %q/%q, want %q/%q", got.Title, got.Description, task.Title, task.Description)
	}
	if got.Category != model.CategoryWork || got.Color != task.Color {
		t.Errorf("category/color: got %q/%q", got.Category, got.Color)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate: got %v, want %v", got.DueDate, due)
	}
	if got.Duration != 2.5 {
		t.Errorf("Duration: got %v, want 2.5", got.Duration)
	}
	if !got.IsPriority || got.IsAllDay {
		t.Errorf("flags: got priority=%v allday=%v", got.IsPriority, got.IsAllDay)
	}
}

func TestUpdateTask(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	task := model.NewTask("task-1", "Original")
	if _, err := database.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	task.Title = "Renamed"
	task.DueDate = nil
	task.UpdatedAt = time.Now()
	if _, err := database.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	got, err := database.GetTask(ctx, "task-1")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title: got %q, want Renamed", got.Title)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate: got %v, want nil", got.DueDate)
	}
}

func TestUpdateUnknownTaskNotFound(t *testing.T) {
	database := openTestDB(t)

	task := model.NewTask("ghost", "Ghost")
	_, err := database.UpdateTask(context.Background(), task)
	if !errors.Is(err, board.ErrNotFound) {
		t.Errorf("UpdateTask: got %v, want ErrNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	task := model.NewTask("task-1", "Doomed")
	if _, err := database.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := database.DeleteTask(ctx, "task-1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := database.GetTask(ctx, "task-1"); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("GetTask after delete: got %v, want ErrNotFound", err)
	}
	if err := database.DeleteTask(ctx, "task-1"); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("second DeleteTask: got %v, want ErrNotFound", err)
	}
}
