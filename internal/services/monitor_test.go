package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdx/attention/internal/domain"
)

type fakeLocker struct {
	calls     int
	err       error
	available bool
}

func (f *fakeLocker) Lock() error {
	f.calls++
	return f.err
}

func (f *fakeLocker) Available() bool { return f.available }

func mustSchedule(t *testing.T, windows ...[3]string) domain.Schedule {
	t.Helper()
	entries := make([]domain.Entry, 0, len(windows))
	for _, w := range windows {
		entry, err := domain.NewEntry(w[0], w[1], w[2])
		require.NoError(t, err)
		entries = append(entries, entry)
	}
	return domain.NewSchedule(entries)
}

func monitorAt(hour, minute, second int) time.Time {
	return time.Date(2024, 3, 15, hour, minute, second, 0, time.Local)
}

func TestTickOutsideAnyWindow(t *testing.T) {
	locker := &fakeLocker{available: true}
	m := NewMonitor(mustSchedule(t, [3]string{"10:00", "10:10", "Break"}), locker, nil)

	state := m.Tick(monitorAt(9, 30, 0))

	assert.Nil(t, state)
	assert.Zero(t, locker.calls)
}

func TestTickInsideWindowLocksOnce(t *testing.T) {
	locker := &fakeLocker{available: true}
	m := NewMonitor(mustSchedule(t, [3]string{"10:00", "10:10", "Stretch"}), locker, nil)

	state := m.Tick(monitorAt(10, 0, 0))

	require.NotNil(t, state)
	assert.Equal(t, "Stretch", state.Entry.Label)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 10*time.Minute, state.Remaining)
	assert.Equal(t, 1, locker.calls)

	// Subsequent ticks inside the re-lock interval do not lock again.
	for s := 1; s < int(domain.DefaultRelockInterval.Seconds()); s++ {
		m.Tick(monitorAt(10, 0, s))
	}
	assert.Equal(t, 1, locker.calls)

	// The interval elapsing triggers a re-lock.
	m.Tick(monitorAt(10, 0, 15))
	assert.Equal(t, 2, locker.calls)
}

func TestTickLeavingWindowClearsGuard(t *testing.T) {
	locker := &fakeLocker{available: true}
	m := NewMonitor(mustSchedule(t, [3]string{"10:00", "10:01", "Break"}), locker, nil)

	require.NotNil(t, m.Tick(monitorAt(10, 0, 0)))
	assert.Nil(t, m.Tick(monitorAt(10, 1, 0)))
	assert.Equal(t, 1, locker.calls)

	// The next day's occurrence of the same window locks afresh.
	nextDay := time.Date(2024, 3, 16, 10, 0, 0, 0, time.Local)
	require.NotNil(t, m.Tick(nextDay))
	assert.Equal(t, 2, locker.calls)
}

func TestTickOverlappingWindowsFirstMatchWins(t *testing.T) {
	m := NewMonitor(mustSchedule(t,
		[3]string{"09:00", "10:00", "Long"},
		[3]string{"09:30", "10:30", "Short"},
	), nil, nil)

	state := m.Tick(monitorAt(9, 45, 0))

	require.NotNil(t, state)
	assert.Equal(t, "Long", state.Entry.Label)
	require.NotNil(t, state.Next)
	assert.Equal(t, "Short", state.Next.Label)
}

func TestTickLockFailureNotifiesOnce(t *testing.T) {
	locker := &fakeLocker{available: true, err: errors.New("no display")}
	notifier := &fakeNotifier{}
	m := NewMonitor(mustSchedule(t, [3]string{"10:00", "10:10", "Break"}), locker, notifier)

	m.Tick(monitorAt(10, 0, 0))
	m.Tick(monitorAt(10, 0, 15))
	m.Tick(monitorAt(10, 0, 30))

	assert.Equal(t, 3, locker.calls)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "no display")
}

func TestTickUnavailableLockerStillShowsOverlay(t *testing.T) {
	locker := &fakeLocker{available: false}
	m := NewMonitor(mustSchedule(t, [3]string{"10:00", "10:10", "Break"}), locker, nil)

	state := m.Tick(monitorAt(10, 0, 0))

	require.NotNil(t, state)
	assert.Zero(t, locker.calls)
}

func TestSetScheduleResetsGuardOnChange(t *testing.T) {
	locker := &fakeLocker{available: true}
	m := NewMonitor(mustSchedule(t, [3]string{"10:00", "10:10", "Break"}), locker, nil)

	m.Tick(monitorAt(10, 0, 0))
	assert.Equal(t, 1, locker.calls)

	// Same schedule keeps the lock memory.
	m.SetSchedule(mustSchedule(t, [3]string{"10:00", "10:10", "Break"}))
	m.Tick(monitorAt(10, 0, 5))
	assert.Equal(t, 1, locker.calls)

	// A changed schedule clears it, so the active window locks afresh.
	m.SetSchedule(mustSchedule(t,
		[3]string{"10:00", "10:10", "Break"},
		[3]string{"15:00", "15:05", "Stretch"},
	))
	m.Tick(monitorAt(10, 0, 6))
	assert.Equal(t, 2, locker.calls)
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewMonitor(nil, nil, nil).Enabled())
	assert.True(t, NewMonitor(mustSchedule(t, [3]string{"10:00", "10:10", ""}), nil, nil).Enabled())
}
