package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/client"
	"github.com/existflow/weekdeck/internal/config"
	"github.com/existflow/weekdeck/internal/db"
)

// openBoard loads a board from the configured store: the remote server
// when server_url is set, the local database otherwise.
func openBoard(ctx context.Context, cfg *config.Config) (*board.Board, func(), error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if cfg.ServerURL != "" {
		c := client.New(cfg.ServerURL)
		b := board.New(c)
		if err := b.Load(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to load tasks from %s: %w", cfg.ServerURL, err)
		}
		return b, func() {}, nil
	}

	database, err := db.OpenDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	b := board.New(database)
	if err := b.Load(ctx); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return b, func() { _ = database.Close() }, nil
}

// parseDate accepts YYYY-MM-DD plus the shortcuts 'today' and 'tomorrow'.
func parseDate(s string) (time.Time, error) {
	now := time.Now()
	switch strings.ToLower(s) {
	case "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD, 'today' or 'tomorrow')", s)
	}
	return d, nil
}

// parseClock accepts HH:MM.
func parseClock(s string) (hour, min int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return t.Hour(), t.Minute(), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
