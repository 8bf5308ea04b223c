package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avdx/attention/internal/config"
	"github.com/avdx/attention/internal/domain"
)

var (
	scheduleStart string
	scheduleEnd   string
	scheduleLabel string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show or edit the break schedule",
	RunE:  runScheduleList,
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured break windows",
	RunE:  runScheduleList,
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a break window",
	RunE:  runScheduleAdd,
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a break window by its list index",
	Args:  cobra.ExactArgs(1),
	RunE:  runScheduleRemove,
}

func init() {
	scheduleAddCmd.Flags().StringVar(&scheduleStart, "start", "", "Window start as HH:MM")
	scheduleAddCmd.Flags().StringVar(&scheduleEnd, "end", "", "Window end as HH:MM")
	scheduleAddCmd.Flags().StringVar(&scheduleLabel, "label", "", "Window label (default: Break)")
	_ = scheduleAddCmd.MarkFlagRequired("start")
	_ = scheduleAddCmd.MarkFlagRequired("end")

	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleRemoveCmd)
}

func runScheduleList(cmd *cobra.Command, args []string) error {
	if len(app.config.Schedule) == 0 {
		fmt.Println("No break windows configured.")
		return nil
	}
	for i, entry := range app.config.Schedule {
		fmt.Printf("%2d  %s - %s  %s\n", i+1, entry.Start, entry.End, entry.Label)
	}
	return nil
}

func runScheduleAdd(cmd *cobra.Command, args []string) error {
	entry, err := domain.NewEntry(scheduleStart, scheduleEnd, scheduleLabel)
	if err != nil {
		return err
	}

	app.config.Schedule = append(app.config.Schedule, config.ScheduleEntry{
		Start: entry.Start.String(),
		End:   entry.End.String(),
		Label: entry.Label,
	})
	if err := config.Save(app.config, app.configPath); err != nil {
		return err
	}

	fmt.Printf("Added %s\n", entry)
	return nil
}

func runScheduleRemove(cmd *cobra.Command, args []string) error {
	index, err := parseScheduleIndex(args[0], len(app.config.Schedule))
	if err != nil {
		return err
	}

	removed := app.config.Schedule[index]
	app.config.Schedule = append(app.config.Schedule[:index], app.config.Schedule[index+1:]...)
	if err := config.Save(app.config, app.configPath); err != nil {
		return err
	}

	fmt.Printf("Removed %s - %s  %s\n", removed.Start, removed.End, removed.Label)
	return nil
}

// parseScheduleIndex converts a 1-based display index into a slice
// index, validating the bounds.
func parseScheduleIndex(arg string, length int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("index %d out of range (schedule has %d windows)", n, length)
	}
	return n - 1, nil
}
