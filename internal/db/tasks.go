package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/model"
)

// ListTasks returns all tasks ordered by creation time.
func (db *DB) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, category, color, due_date, duration,
		       is_all_day, is_priority, created_at, updated_at
		FROM tasks
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask returns the task with the given id, or board.ErrNotFound.
func (db *DB) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, title, description, category, color, due_date, duration,
		       is_all_day, is_priority, created_at, updated_at
		FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, board.ErrNotFound
	}
	return t, err
}

// CreateTask inserts a new task.
func (db *DB) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, category, color, due_date,
		                   duration, is_all_day, is_priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, string(t.Category), t.Color,
		nullTime(t.DueDate), nullFloat(t.Duration), t.IsAllDay, t.IsPriority,
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// UpdateTask replaces the stored task with the given id.
func (db *DB) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	res, err := db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, category = ?, color = ?, due_date = ?,
		    duration = ?, is_all_day = ?, is_priority = ?, updated_at = ?
		WHERE id = ?`,
		t.Title, t.Description, string(t.Category), t.Color,
		nullTime(t.DueDate), nullFloat(t.Duration), t.IsAllDay, t.IsPriority,
		t.UpdatedAt.Format(time.RFC3339), t.ID)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, board.ErrNotFound
	}
	return t, nil
}

// DeleteTask removes the task with the given id.
func (db *DB) DeleteTask(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return board.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	var category string
	var dueDate sql.NullString
	var duration sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.Title, &t.Description, &category, &t.Color,
		&dueDate, &duration, &t.IsAllDay, &t.IsPriority, &createdAt, &updatedAt)
	if err != nil {
		return model.Task{}, err
	}

	t.Category = model.Category(category)
	if dueDate.Valid {
		if parsed, err := time.Parse(time.RFC3339, dueDate.String); err == nil {
			local := parsed.Local()
			t.DueDate = &local
		}
	}
	if duration.Valid {
		t.Duration = duration.Float64
	}
	if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = parsed.Local()
	}
	if parsed, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		t.UpdatedAt = parsed.Local()
	}
	return t, nil
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func nullFloat(f float64) sql.NullFloat64 {
	if f == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}
