package cmd

import (
	"testing"
	"time"

	"github.com/avdx/attention/internal/domain"
)

func testSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	morning, err := domain.NewEntry("10:00", "10:10", "Stretch")
	if err != nil {
		t.Fatal(err)
	}
	lunch, err := domain.NewEntry("12:00", "12:45", "Lunch")
	if err != nil {
		t.Fatal(err)
	}
	return domain.NewSchedule([]domain.Entry{morning, lunch})
}

func statusAt(hour, minute int) time.Time {
	return time.Date(2024, 3, 15, hour, minute, 0, 0, time.Local)
}

func TestBuildStatusDuringBreak(t *testing.T) {
	status := buildStatus(testSchedule(t), "No task", statusAt(10, 5))

	if !status.BreakActive {
		t.Fatal("expected an active break at 10:05")
	}
	if status.Active == nil || status.Active.Label != "Stretch" {
		t.Fatalf("Active = %+v, want the Stretch window", status.Active)
	}
	if status.Active.RemainingSeconds != 300 {
		t.Errorf("RemainingSeconds = %d, want 300", status.Active.RemainingSeconds)
	}
	if status.Next != nil {
		t.Error("Next should be empty while a break is active")
	}
}

func TestBuildStatusBetweenBreaks(t *testing.T) {
	status := buildStatus(testSchedule(t), "No task", statusAt(11, 0))

	if status.BreakActive {
		t.Fatal("no break expected at 11:00")
	}
	if status.Next == nil || status.Next.Label != "Lunch" {
		t.Fatalf("Next = %+v, want the Lunch window", status.Next)
	}
}

func TestBuildStatusAfterLastBreak(t *testing.T) {
	status := buildStatus(testSchedule(t), "No task", statusAt(18, 0))

	if status.BreakActive || status.Next != nil {
		t.Errorf("no active or upcoming window expected at 18:00, got %+v", status)
	}
	if status.Windows != 2 {
		t.Errorf("Windows = %d, want 2", status.Windows)
	}
}

func TestNextWindowSkipsStartedWindows(t *testing.T) {
	// At 10:00 sharp the first window has started, so Lunch is next.
	next := nextWindow(testSchedule(t), statusAt(10, 0))
	if next == nil || next.Label != "Lunch" {
		t.Errorf("next = %+v, want Lunch", next)
	}
}
