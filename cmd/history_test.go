package cmd

import (
	"testing"

	"github.com/avdx/attention/internal/domain"
)

func TestFormatHistoryLine(t *testing.T) {
	record := domain.Record{
		Timestamp: "2024-03-15T09:04:05",
		Event:     domain.EventStart,
		Title:     "write report",
		Branch:    "main",
	}
	got := formatHistoryLine(record)
	want := "  09:04:05  start   write report (main)"
	if got != want {
		t.Errorf("formatHistoryLine() = %q, want %q", got, want)
	}
}

func TestFormatHistoryLineNoBranch(t *testing.T) {
	record := domain.Record{
		Timestamp: "2024-03-15T17:30:00",
		Event:     domain.EventStop,
		Title:     "write report",
	}
	got := formatHistoryLine(record)
	want := "  17:30:00  stop    write report"
	if got != want {
		t.Errorf("formatHistoryLine() = %q, want %q", got, want)
	}
}

func TestFormatHistoryLineUnparseableTimestamp(t *testing.T) {
	record := domain.Record{Timestamp: "garbage", Event: domain.EventPause, Title: "t"}
	got := formatHistoryLine(record)
	want := "  garbage  pause   t"
	if got != want {
		t.Errorf("formatHistoryLine() = %q, want %q", got, want)
	}
}
