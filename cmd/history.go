package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avdx/attention/internal/domain"
)

var historyDate string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded task events for a day",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDate, "date", "", "Day to show in YYYY-MM-DD form (default: today)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	day := historyDate
	if day == "" {
		day = domain.DayKey(time.Now())
	}
	if _, err := time.Parse(domain.DayKeyLayout, day); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", day)
	}

	records, err := app.history.Day(cmd.Context(), day)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No events recorded for %s.\n", day)
		return nil
	}

	fmt.Println(day)
	// Most recent first.
	for i := len(records) - 1; i >= 0; i-- {
		fmt.Println(formatHistoryLine(records[i]))
	}
	return nil
}

// formatHistoryLine renders one record as "HH:MM:SS  event   title".
func formatHistoryLine(r domain.Record) string {
	clock := r.Timestamp
	if t, err := time.Parse(domain.TimestampLayout, r.Timestamp); err == nil {
		clock = t.Format("15:04:05")
	}
	line := fmt.Sprintf("  %s  %-6s  %s", clock, r.Event, r.Title)
	if r.Branch != "" {
		line += fmt.Sprintf(" (%s)", r.Branch)
	}
	return line
}
