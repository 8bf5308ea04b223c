package domain

import (
	"fmt"
	"time"
)

// Estimate band thresholds on the elapsed/estimate ratio. The boundaries
// are inclusive: ratio 0.8 is still "approaching", ratio 1.0 is still
// "at".
const (
	ThresholdUnder       = 0.5
	ThresholdApproaching = 0.8
	ThresholdAt          = 1.0
)

// Band is the severity level of elapsed time against the estimate.
type Band int

const (
	BandNone Band = iota // no estimate set
	BandUnder
	BandApproaching
	BandAt
	BandOver
)

// String returns a lowercase label for the band.
func (b Band) String() string {
	switch b {
	case BandUnder:
		return "under"
	case BandApproaching:
		return "approaching"
	case BandAt:
		return "at"
	case BandOver:
		return "over"
	default:
		return "none"
	}
}

// EstimateBand classifies elapsed time against an estimate in minutes.
func EstimateBand(elapsed time.Duration, estimateMinutes int) Band {
	if estimateMinutes <= 0 {
		return BandNone
	}
	ratio := elapsed.Seconds() / float64(estimateMinutes*60)
	switch {
	case ratio <= ThresholdUnder:
		return BandUnder
	case ratio <= ThresholdApproaching:
		return BandApproaching
	case ratio <= ThresholdAt:
		return BandAt
	default:
		return BandOver
	}
}

// MinutesOver returns how many minutes elapsed exceeds the estimate,
// rounded up. Zero when not over.
func MinutesOver(elapsed time.Duration, estimateMinutes int) int {
	overSec := int(elapsed.Seconds()) - estimateMinutes*60
	if overSec <= 0 {
		return 0
	}
	return (overSec + 59) / 60
}

// EstimateText renders the estimate line: the estimate itself while
// within it, minutes over once exceeded.
func EstimateText(elapsed time.Duration, estimateMinutes int) string {
	if estimateMinutes <= 0 {
		return ""
	}
	if EstimateBand(elapsed, estimateMinutes) != BandOver {
		return fmt.Sprintf("Estimate %s", pluralMinutes(estimateMinutes))
	}
	return fmt.Sprintf("%s over", pluralMinutes(MinutesOver(elapsed, estimateMinutes)))
}

// ElapsedText renders the elapsed duration the way the overlay displays
// it: "<1 minute" below a minute, whole minutes below an hour, then
// hours with an optional minute remainder.
func ElapsedText(elapsed time.Duration) string {
	totalSeconds := int(elapsed.Seconds())
	if totalSeconds < 60 {
		return "Elapsed <1 minute"
	}
	totalMinutes := totalSeconds / 60
	if totalMinutes < 60 {
		return fmt.Sprintf("Elapsed %d minutes", totalMinutes)
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if minutes == 0 {
		return fmt.Sprintf("Elapsed %dh", hours)
	}
	return fmt.Sprintf("Elapsed %dh %dm", hours, minutes)
}

func pluralMinutes(n int) string {
	if n == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n)
}
