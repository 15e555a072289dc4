package cli

import (
	"fmt"
	"strconv"

	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/config"
	"github.com/existflow/weekdeck/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task field",
	Long: `Edit one or more fields of a task. Each flag is applied as its
own field change, so scheduling attributes are re-normalized after every
edit (an all-day task never keeps a duration, a cleared date drops the
duration, and so on).

Examples:
  weekdeck edit abc123 --title "New title"
  weekdeck edit abc123 --due 2024-03-01 --time 14:00
  weekdeck edit abc123 --all-day=true
  weekdeck edit abc123 --category Uni --priority=true
  weekdeck edit abc123 --due none`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle    string
	editDesc     string
	editCategory string
	editDue      string
	editTime     string
	editDuration string
	editAllDay   bool
	editPriority bool
)

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "New description")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "New due date (YYYY-MM-DD, 'today', 'tomorrow', 'none' to clear)")
	editCmd.Flags().StringVarP(&editTime, "time", "t", "", "New time of day (HH:MM)")
	editCmd.Flags().StringVar(&editDuration, "duration", "", "New duration in hours")
	editCmd.Flags().BoolVar(&editAllDay, "all-day", false, "All-day flag")
	editCmd.Flags().BoolVarP(&editPriority, "priority", "p", false, "Priority flag")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	changes := []board.Change{}
	if cmd.Flags().Changed("title") {
		changes = append(changes, board.SetTitle{Title: editTitle})
	}
	if cmd.Flags().Changed("desc") {
		changes = append(changes, board.SetDescription{Description: editDesc})
	}
	if cmd.Flags().Changed("category") {
		category, ok := model.ParseCategory(editCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (want Personal, Uni, Work or Backlog)", editCategory)
		}
		changes = append(changes, board.SetCategory{Category: category})
	}
	if cmd.Flags().Changed("due") {
		if editDue == "none" {
			changes = append(changes, board.SetDate{Clear: true})
		} else {
			date, err := parseDate(editDue)
			if err != nil {
				return err
			}
			changes = append(changes, board.SetDate{Date: date})
		}
	}
	if cmd.Flags().Changed("all-day") {
		changes = append(changes, board.SetAllDay{AllDay: editAllDay})
	}
	if cmd.Flags().Changed("time") {
		hour, min, err := parseClock(editTime)
		if err != nil {
			return err
		}
		changes = append(changes, board.SetClock{Hour: hour, Minute: min})
	}
	if cmd.Flags().Changed("duration") {
		hours, _ := strconv.ParseFloat(editDuration, 64)
		changes = append(changes, board.SetDuration{Hours: hours})
	}
	if cmd.Flags().Changed("priority") {
		changes = append(changes, board.SetPriority{Priority: editPriority})
	}

	if len(changes) == 0 {
		return fmt.Errorf("nothing to change; see 'weekdeck edit --help'")
	}

	ctx := cmd.Context()
	for _, ch := range changes {
		if task, _, err = b.Edit(ctx, task.ID, ch); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
	}

	fmt.Printf("✓ Updated [%s]: \"%s\" (%s)\n", task.Category, task.Title, formatSchedule(task))
	return nil
}
