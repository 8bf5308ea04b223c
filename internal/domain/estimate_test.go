package domain

import (
	"testing"
	"time"
)

func TestEstimateBand(t *testing.T) {
	tests := []struct {
		name            string
		elapsed         time.Duration
		estimateMinutes int
		want            Band
	}{
		{"no estimate", 10 * time.Minute, 0, BandNone},
		{"under at 0.4", 4 * time.Minute, 10, BandUnder},
		{"under at exactly 0.5", 5 * time.Minute, 10, BandUnder},
		{"approaching above 0.5", 5*time.Minute + time.Second, 10, BandApproaching},
		{"approaching at exactly 0.8", 8 * time.Minute, 10, BandApproaching},
		{"at above 0.8", 8*time.Minute + time.Second, 10, BandAt},
		{"at 0.9", 9 * time.Minute, 10, BandAt},
		{"at exactly 1.0", 10 * time.Minute, 10, BandAt},
		{"over above 1.0", 10*time.Minute + time.Second, 10, BandOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateBand(tt.elapsed, tt.estimateMinutes); got != tt.want {
				t.Errorf("EstimateBand(%v, %d) = %v, want %v", tt.elapsed, tt.estimateMinutes, got, tt.want)
			}
		})
	}
}

func TestMinutesOver(t *testing.T) {
	tests := []struct {
		elapsed         time.Duration
		estimateMinutes int
		want            int
	}{
		{9 * time.Minute, 10, 0},
		{10 * time.Minute, 10, 0},
		{10*time.Minute + time.Second, 10, 1}, // rounds up
		{11 * time.Minute, 10, 1},
		{11*time.Minute + time.Second, 10, 2},
		{25 * time.Minute, 10, 15},
	}
	for _, tt := range tests {
		if got := MinutesOver(tt.elapsed, tt.estimateMinutes); got != tt.want {
			t.Errorf("MinutesOver(%v, %d) = %d, want %d", tt.elapsed, tt.estimateMinutes, got, tt.want)
		}
	}
}

func TestEstimateText(t *testing.T) {
	if got := EstimateText(4*time.Minute, 10); got != "Estimate 10 minutes" {
		t.Errorf("EstimateText under = %q", got)
	}
	if got := EstimateText(11*time.Minute, 10); got != "1 minute over" {
		t.Errorf("EstimateText over = %q, want %q", got, "1 minute over")
	}
	if got := EstimateText(22*time.Minute, 10); got != "12 minutes over" {
		t.Errorf("EstimateText over = %q, want %q", got, "12 minutes over")
	}
	if got := EstimateText(time.Minute, 0); got != "" {
		t.Errorf("EstimateText without estimate = %q, want empty", got)
	}
}

func TestElapsedText(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "Elapsed <1 minute"},
		{59 * time.Second, "Elapsed <1 minute"},
		{60 * time.Second, "Elapsed 1 minutes"},
		{2 * time.Minute, "Elapsed 2 minutes"},
		{59 * time.Minute, "Elapsed 59 minutes"},
		{time.Hour, "Elapsed 1h"},
		{2 * time.Hour, "Elapsed 2h"},
		{90 * time.Minute, "Elapsed 1h 30m"},
	}
	for _, tt := range tests {
		if got := ElapsedText(tt.elapsed); got != tt.want {
			t.Errorf("ElapsedText(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}
