package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultEntryLabel is used when a schedule entry has no label.
const DefaultEntryLabel = "Break"

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayFrom truncates a timestamp to its minute of the day.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Entry is a single recurring daily break window.
type Entry struct {
	Start TimeOfDay
	End   TimeOfDay
	Label string
}

// NewEntry validates and builds a schedule entry. Start must be strictly
// before end; overnight windows are not supported. An empty label falls
// back to DefaultEntryLabel.
func NewEntry(start, end, label string) (Entry, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Entry{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Entry{}, err
	}
	if s >= e {
		return Entry{}, fmt.Errorf("%w: %s >= %s", ErrEntryOrder, s, e)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultEntryLabel
	}
	return Entry{Start: s, End: e, Label: label}, nil
}

// Contains reports whether t falls inside [Start, End).
func (e Entry) Contains(t TimeOfDay) bool {
	return e.Start <= t && t < e.End
}

// Remaining returns the time left until the entry's end, clamped at zero.
func (e Entry) Remaining(now time.Time) time.Duration {
	end := time.Date(now.Year(), now.Month(), now.Day(),
		int(e.End)/60, int(e.End)%60, 0, 0, now.Location())
	remaining := end.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// String formats the entry as "HH:MM - HH:MM Label".
func (e Entry) String() string {
	return fmt.Sprintf("%s - %s  %s", e.Start, e.End, e.Label)
}

// Schedule is an ordered list of break windows, sorted by start time.
// Entries may overlap; evaluation resolves overlap by first match in list
// order, so only the earliest-starting window can win.
type Schedule []Entry

// NewSchedule sorts the given entries by start time. The input slice is
// not modified.
func NewSchedule(entries []Entry) Schedule {
	s := make(Schedule, len(entries))
	copy(s, entries)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Start < s[j].Start })
	return s
}

// Match identifies the active schedule entry at some instant.
type Match struct {
	Index int
	Entry Entry
	// Next is the entry immediately following the match in list order,
	// nil if the match is the last entry.
	Next *Entry
}

// Evaluate returns the first entry containing now, or nil when no entry is
// active. It is a pure function and safe to call on every tick.
func (s Schedule) Evaluate(now time.Time) *Match {
	minute := TimeOfDayFrom(now)
	for i, entry := range s {
		if !entry.Contains(minute) {
			continue
		}
		m := &Match{Index: i, Entry: entry}
		if i+1 < len(s) {
			next := s[i+1]
			m.Next = &next
		}
		return m
	}
	return nil
}

// Equal reports whether two schedules hold the same entries in the same
// order. Used for change detection when the config file is reloaded.
func (s Schedule) Equal(other Schedule) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
