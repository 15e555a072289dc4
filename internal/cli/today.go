package cli

import (
	"fmt"

	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/config"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today [task-id]",
	Short: "Reschedule a task to today",
	Long: `Reschedule a task to today as an all-day task. This is a fixed
shortcut: any previous time of day and duration are dropped.

Examples:
  weekdeck today abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	b, closeStore, err := openBoard(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	task, ok := b.Find(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}

	task, _, err = b.Edit(cmd.Context(), task.ID, board.SetToday{})
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	fmt.Printf("✓ \"%s\" is due today (all day)\n", task.Title)
	return nil
}
