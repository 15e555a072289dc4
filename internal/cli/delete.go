package cli

import (
	"fmt"

	"github.com/existflow/weekdeck/internal/config"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its ID (a unique prefix is enough).

Examples:
  weekdeck delete abc123
  weekdeck rm abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if cfg.ConfirmDelete {
		fmt.Printf("About to delete: \"%s\" (ID: %s)\n", task.Title, shortID(task.ID))
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if _, err := b.Delete(cmd.Context(), task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("🗑  Deleted: \"%s\"\n", task.Title)
	return nil
}
