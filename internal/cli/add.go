package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/existflow/weekdeck/internal/board"
	"github.com/existflow/weekdeck/internal/config"
	"github.com/existflow/weekdeck/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task. New tasks default to the Personal category,
due today as a timed event.

Examples:
  weekdeck add "Buy groceries"
  weekdeck add "Write report" -c Work --priority
  weekdeck add "Lecture prep" -c Uni --due 2024-03-01 --time 09:30 --duration 2
  weekdeck add "Spring cleaning" --due tomorrow --all-day`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addCategory string
	addDue      string
	addTime     string
	addDuration string
	addAllDay   bool
	addPriority bool
	addDesc     string
)

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "Personal", "Category (Personal, Uni, Work, Backlog)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (YYYY-MM-DD, 'today', 'tomorrow')")
	addCmd.Flags().StringVarP(&addTime, "time", "t", "", "Time of day (HH:MM)")
	addCmd.Flags().StringVar(&addDuration, "duration", "", "Duration in hours (e.g. 1.5)")
	addCmd.Flags().BoolVar(&addAllDay, "all-day", false, "Schedule as an all-day task")
	addCmd.Flags().BoolVarP(&addPriority, "priority", "p", false, "Mark as priority")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Description")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	b, closeStore, err := openBoard(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	title := strings.Join(args, " ")

	category, ok := model.ParseCategory(addCategory)
	if !ok {
		return fmt.Errorf("unknown category %q (want Personal, Uni, Work or Backlog)", addCategory)
	}

	ctx := cmd.Context()
	task, ok, err := b.Add(ctx, title, category)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	if !ok {
		// Blank titles are ignored, matching the list view's add box.
		return nil
	}

	changes := []board.Change{}
	if cmd.Flags().Changed("due") {
		date, err := parseDate(addDue)
		if err != nil {
			return err
		}
		changes = append(changes, board.SetDate{Date: date})
	}
	if addAllDay {
		changes = append(changes, board.SetAllDay{AllDay: true})
	}
	if cmd.Flags().Changed("time") {
		hour, min, err := parseClock(addTime)
		if err != nil {
			return err
		}
		changes = append(changes, board.SetClock{Hour: hour, Minute: min})
	}
	if cmd.Flags().Changed("duration") {
		// Coerced, never rejected.
		hours, _ := strconv.ParseFloat(addDuration, 64)
		changes = append(changes, board.SetDuration{Hours: hours})
	}
	if addPriority {
		changes = append(changes, board.SetPriority{Priority: true})
	}
	if cmd.Flags().Changed("desc") {
		changes = append(changes, board.SetDescription{Description: addDesc})
	}

	for _, ch := range changes {
		if task, _, err = b.Edit(ctx, task.ID, ch); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
	}

	fmt.Printf("✓ Added [%s]: \"%s\" (%s)\n", task.Category, task.Title, formatSchedule(task))
	return nil
}

func formatSchedule(t model.Task) string {
	if t.DueDate == nil {
		return "unscheduled"
	}
	if t.IsAllDay {
		return t.DueDate.Format("Jan 2") + ", all day"
	}
	s := t.DueDate.Format("Jan 2 15:04")
	if t.Duration > 0 {
		s += fmt.Sprintf(", %gh", t.Duration)
	}
	return s
}
