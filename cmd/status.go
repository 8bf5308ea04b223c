package cmd

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/avdx/attention/internal/domain"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the schedule state at the current time",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}

// scheduleStatus is the status command's output shape.
type scheduleStatus struct {
	Now         string  `json:"now"`
	Message     string  `json:"message"`
	BreakActive bool    `json:"break_active"`
	Active      *window `json:"active_window,omitempty"`
	Next        *window `json:"next_window,omitempty"`
	Windows     int     `json:"windows"`
}

type window struct {
	Start            string `json:"start"`
	End              string `json:"end"`
	Label            string `json:"label"`
	RemainingSeconds int    `json:"remaining_seconds,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	status := buildStatus(app.config.DomainSchedule(), app.config.Message, time.Now())

	if statusJSON {
		data, err := sonic.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode status: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Time:     %s\n", status.Now)
	fmt.Printf("Message:  %s\n", status.Message)
	switch {
	case status.Active != nil:
		fmt.Printf("Break:    %s - %s  %s (%ds remaining)\n",
			status.Active.Start, status.Active.End, status.Active.Label,
			status.Active.RemainingSeconds)
	case status.Next != nil:
		fmt.Printf("Next:     %s - %s  %s\n",
			status.Next.Start, status.Next.End, status.Next.Label)
	default:
		fmt.Println("Break:    none scheduled for the rest of the day")
	}
	return nil
}

func buildStatus(schedule domain.Schedule, message string, now time.Time) scheduleStatus {
	status := scheduleStatus{
		Now:     now.Format("15:04:05"),
		Message: message,
		Windows: len(schedule),
	}

	if match := schedule.Evaluate(now); match != nil {
		status.BreakActive = true
		status.Active = &window{
			Start:            match.Entry.Start.String(),
			End:              match.Entry.End.String(),
			Label:            match.Entry.Label,
			RemainingSeconds: int(match.Entry.Remaining(now).Seconds()),
		}
		return status
	}

	if next := nextWindow(schedule, now); next != nil {
		status.Next = &window{
			Start: next.Start.String(),
			End:   next.End.String(),
			Label: next.Label,
		}
	}
	return status
}

// nextWindow returns the first window starting after now, nil when the
// day has no more windows.
func nextWindow(schedule domain.Schedule, now time.Time) *domain.Entry {
	minute := domain.TimeOfDayFrom(now)
	for _, entry := range schedule {
		if entry.Start > minute {
			e := entry
			return &e
		}
	}
	return nil
}
