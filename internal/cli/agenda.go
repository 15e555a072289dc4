package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/existflow/weekdeck/internal/calendar"
	"github.com/existflow/weekdeck/internal/config"
	"github.com/spf13/cobra"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show this week's calendar events",
	Long: `Show the calendar projection of the current week: one event per
scheduled task, grouped by day. Unscheduled tasks do not appear.

Examples:
  weekdeck agenda
  weekdeck agenda --weeks 2`,
	RunE: runAgenda,
}

var agendaWeeks int

func init() {
	agendaCmd.Flags().IntVarP(&agendaWeeks, "weeks", "w", 1, "Number of weeks to show")
}

func runAgenda(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()
	b, closeStore, err := openBoard(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if agendaWeeks < 1 {
		agendaWeeks = 1
	}

	weekStart := calendar.StartOfWeek(time.Now())
	weekEnd := weekStart.AddDate(0, 0, 7*agendaWeeks)

	events := calendar.Project(b.Tasks())
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	count := 0
	var lastDay string
	for _, e := range events {
		if e.Start.Before(weekStart) || !e.Start.Before(weekEnd) {
			continue
		}
		day := e.Start.Format("Mon Jan 2")
		if day != lastDay {
			fmt.Printf("\n%s\n%s\n", day, strings.Repeat("─", 40))
			lastDay = day
		}
		fmt.Printf("  %s\n", formatEvent(e))
		count++
	}

	if count == 0 {
		fmt.Println("Nothing scheduled this week.")
	} else {
		fmt.Println()
	}
	return nil
}

func formatEvent(e calendar.Event) string {
	flag := ""
	if e.IsPriority {
		flag = " ▲"
	}
	if e.AllDay {
		return fmt.Sprintf("all day      %s%s  (%s)", e.Title, flag, e.Category)
	}
	window := e.Start.Format("15:04")
	if e.HasEnd() {
		window += "–" + e.End.Format("15:04")
	}
	return fmt.Sprintf("%-12s %s%s  (%s)", window, e.Title, flag, e.Category)
}

