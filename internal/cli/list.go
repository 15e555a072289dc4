package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/weekdeck/internal/config"
	"github.com/existflow/weekdeck/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks in display order: priority first, then scheduled
before unscheduled, then chronologically, then by title.

Examples:
  weekdeck list
  weekdeck list --category Work`,
	RunE: runList,
}

var listCategory string

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	b, closeStore, err := openBoard(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	tasks := b.Ordered()

	if listCategory != "" {
		category, ok := model.ParseCategory(listCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (want Personal, Uni, Work or Backlog)", listCategory)
		}
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Category == category {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found. Add one with: weekdeck add \"Your task\"")
		return nil
	}

	fmt.Printf("\n📋 Tasks (%d)\n", len(tasks))
	fmt.Println(strings.Repeat("─", 72))
	for _, t := range tasks {
		printTask(t)
	}
	fmt.Println()

	return nil
}

func printTask(t model.Task) {
	flag := "  "
	if t.IsPriority {
		flag = "▲ "
	}

	title := t.Title
	if len(title) > 36 {
		title = title[:33] + "..."
	}

	fmt.Printf("  %s%-8s  %-36s  %-10s  %s\n",
		flag, shortID(t.ID), title, t.Category, formatSchedule(t))
}
