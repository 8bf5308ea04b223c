package domain

import "time"

// DefaultRelockInterval is how often the lock is re-asserted while the
// same break window stays active. A single lock per window is not enough:
// the user can dismiss the OS lock screen and keep working.
const DefaultRelockInterval = 15 * time.Second

// LockMarker identifies one day's occurrence of one schedule entry.
type LockMarker struct {
	Day   string
	Start TimeOfDay
	End   TimeOfDay
}

// MarkerFor builds the marker for an entry on the given day.
func MarkerFor(now time.Time, entry Entry) LockMarker {
	return LockMarker{Day: DayKey(now), Start: entry.Start, End: entry.End}
}

// LockGuard decides whether the workstation should be (re)locked, keeping
// the memory of the last lock it approved. It is not safe for concurrent
// use; all calls happen on the tick loop.
type LockGuard struct {
	RelockInterval time.Duration

	lastMarker   *LockMarker
	lastLockedAt time.Time
}

// NewLockGuard creates a guard with the default re-lock interval.
func NewLockGuard() *LockGuard {
	return &LockGuard{RelockInterval: DefaultRelockInterval}
}

// ShouldLock reports whether a lock should be issued now. It returns true
// for a new occurrence (first tick inside a window, or a different window)
// and again whenever the re-lock interval has elapsed inside the same
// window.
func (g *LockGuard) ShouldLock(marker LockMarker, now time.Time) bool {
	if g.lastMarker == nil || *g.lastMarker != marker {
		return true
	}
	if g.lastLockedAt.IsZero() {
		return true
	}
	return now.Sub(g.lastLockedAt) >= g.RelockInterval
}

// NoteLocked records that a lock was issued for marker at now.
func (g *LockGuard) NoteLocked(marker LockMarker, now time.Time) {
	m := marker
	g.lastMarker = &m
	g.lastLockedAt = now
}

// Clear forgets the lock memory. Called when no entry is active or when
// the schedule itself changes, so the next window start is always treated
// as a new occurrence.
func (g *LockGuard) Clear() {
	g.lastMarker = nil
	g.lastLockedAt = time.Time{}
}
