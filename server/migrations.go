package server

import "fmt"

// migrate runs all database migrations
func (s *Server) migrate() error {
	migrations := []string{
		migrationCreateTasks,
	}

	for i, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const migrationCreateTasks = `
CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT 'Personal',
    color TEXT NOT NULL DEFAULT '#3B82F6',
    due_date TIMESTAMPTZ,
    duration DOUBLE PRECISION,
    is_all_day BOOLEAN NOT NULL DEFAULT FALSE,
    is_priority BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);
`
