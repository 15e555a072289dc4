package server

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/existflow/weekdeck/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// handleListTasks returns all stored tasks
func (s *Server) handleListTasks(c echo.Context) error {
	rows, err := s.db.Query(`
		SELECT id, title, description, category, color, due_date, duration,
		       is_all_day, is_priority, created_at, updated_at
		FROM tasks
		ORDER BY created_at ASC`)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch tasks")
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		var dueDate sql.NullTime
		var duration sql.NullFloat64
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &t.Color,
			&dueDate, &duration, &t.IsAllDay, &t.IsPriority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to scan task")
		}
		if dueDate.Valid {
			d := dueDate.Time
			t.DueDate = &d
		}
		if duration.Valid {
			t.Duration = duration.Float64
		}
		tasks = append(tasks, t)
	}

	return c.JSON(http.StatusOK, tasks)
}

// handleCreateTask stores a new task. The id is assigned server-side
// unless the client minted one already.
func (s *Server) handleCreateTask(c echo.Context) error {
	var t model.Task
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task payload")
	}

	if strings.TrimSpace(t.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if !t.Category.Valid() {
		t.Category = model.CategoryPersonal
	}
	// Color is derived, never trusted from the payload.
	t.Color = model.ColorFor(t.Category)

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, category, color, due_date,
		                   duration, is_all_day, is_priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.Title, t.Description, string(t.Category), t.Color,
		nullableTime(t.DueDate), nullableFloat(t.Duration), t.IsAllDay, t.IsPriority,
		t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create task")
	}

	return c.JSON(http.StatusOK, t)
}

// handleUpdateTask replaces the task with the given id
func (s *Server) handleUpdateTask(c echo.Context) error {
	id := c.Param("id")

	var t model.Task
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task payload")
	}
	t.ID = id
	if !t.Category.Valid() {
		t.Category = model.CategoryPersonal
	}
	t.Color = model.ColorFor(t.Category)
	t.UpdatedAt = time.Now()

	res, err := s.db.Exec(`
		UPDATE tasks
		SET title = $1, description = $2, category = $3, color = $4, due_date = $5,
		    duration = $6, is_all_day = $7, is_priority = $8, updated_at = $9
		WHERE id = $10`,
		t.Title, t.Description, string(t.Category), t.Color,
		nullableTime(t.DueDate), nullableFloat(t.Duration), t.IsAllDay, t.IsPriority,
		t.UpdatedAt, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update task")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}

	return c.JSON(http.StatusOK, t)
}

// handleDeleteTask removes the task with the given id
func (s *Server) handleDeleteTask(c echo.Context) error {
	id := c.Param("id")

	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete task")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}

	return c.NoContent(http.StatusNoContent)
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func nullableFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}
