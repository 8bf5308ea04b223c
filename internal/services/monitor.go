package services

import (
	"fmt"
	"time"

	"github.com/avdx/attention/internal/domain"
	"github.com/avdx/attention/internal/ports"
)

// OverlayState is what the break overlay needs to render for one tick.
type OverlayState struct {
	Now       time.Time
	Entry     domain.Entry
	Index     int
	Next      *domain.Entry
	Remaining time.Duration
	Schedule  domain.Schedule
}

// Monitor evaluates the break schedule once per tick and drives the
// workstation lock through the guard. All methods run on the tick loop;
// Monitor is not safe for concurrent use.
type Monitor struct {
	schedule domain.Schedule
	guard    *domain.LockGuard
	locker   ports.Locker
	notifier ports.Notifier
}

// NewMonitor creates a monitor. locker and notifier may be nil.
func NewMonitor(schedule domain.Schedule, locker ports.Locker, notifier ports.Notifier) *Monitor {
	return &Monitor{
		schedule: NewScheduleCopy(schedule),
		guard:    domain.NewLockGuard(),
		locker:   locker,
		notifier: notifier,
	}
}

// NewScheduleCopy defensively copies a schedule so later config edits
// cannot mutate the one the monitor is holding.
func NewScheduleCopy(schedule domain.Schedule) domain.Schedule {
	out := make(domain.Schedule, len(schedule))
	copy(out, schedule)
	return out
}

// Enabled reports whether any break windows are configured.
func (m *Monitor) Enabled() bool {
	return len(m.schedule) > 0
}

// Schedule returns the schedule the monitor is currently enforcing.
func (m *Monitor) Schedule() domain.Schedule {
	return m.schedule
}

// SetSchedule swaps in a reloaded schedule. An unchanged schedule keeps
// the lock memory; a changed one clears it so the next active window is
// treated as a fresh occurrence.
func (m *Monitor) SetSchedule(schedule domain.Schedule) {
	if m.schedule.Equal(schedule) {
		return
	}
	m.schedule = NewScheduleCopy(schedule)
	m.guard.Clear()
}

// Tick evaluates the schedule at now. Inside a window it issues the lock
// when the guard approves (new occurrence, or the re-lock interval has
// passed) and returns the overlay state; outside any window it clears
// the guard and returns nil.
func (m *Monitor) Tick(now time.Time) *OverlayState {
	match := m.schedule.Evaluate(now)
	if match == nil {
		m.guard.Clear()
		return nil
	}

	marker := domain.MarkerFor(now, match.Entry)
	if m.guard.ShouldLock(marker, now) {
		m.lock()
		// Rate-limit from the attempt, not the success, so a failing
		// lock call cannot be hammered every tick.
		m.guard.NoteLocked(marker, now)
	}

	return &OverlayState{
		Now:       now,
		Entry:     match.Entry,
		Index:     match.Index,
		Next:      match.Next,
		Remaining: match.Entry.Remaining(now),
		Schedule:  m.schedule,
	}
}

func (m *Monitor) lock() {
	if m.locker == nil || !m.locker.Available() {
		return
	}
	if err := m.locker.Lock(); err != nil && m.notifier != nil {
		_ = m.notifier.NotifyOnce("workstation-lock", "attention",
			fmt.Sprintf("Failed to lock workstation: %v", err))
	}
}
