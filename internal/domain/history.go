package domain

import "time"

// Timestamp layouts used by the history file.
const (
	TimestampLayout = "2006-01-02T15:04:05"
	DayKeyLayout    = "2006-01-02"
)

// Event is a session lifecycle event recorded to history.
type Event string

const (
	EventStart  Event = "start"
	EventPause  Event = "pause"
	EventResume Event = "resume"
	EventStop   Event = "stop"
)

// Record is one append-only history entry. Records are grouped by
// calendar day in the store and never mutated after append. Branch is the
// git branch detected when a task starts, absent otherwise.
type Record struct {
	Timestamp string `json:"timestamp"`
	Event     Event  `json:"event"`
	Title     string `json:"title"`
	Branch    string `json:"branch,omitempty"`
}

// NewRecord stamps a record with the local time.
func NewRecord(event Event, title string, now time.Time) Record {
	return Record{
		Timestamp: now.Format(TimestampLayout),
		Event:     event,
		Title:     title,
	}
}

// Day returns the record's day key, falling back to the raw timestamp
// prefix if it does not parse.
func (r Record) Day() string {
	t, err := time.Parse(TimestampLayout, r.Timestamp)
	if err != nil {
		if len(r.Timestamp) >= len(DayKeyLayout) {
			return r.Timestamp[:len(DayKeyLayout)]
		}
		return r.Timestamp
	}
	return t.Format(DayKeyLayout)
}

// DayKey formats a timestamp as a history day key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}
