// Package domain contains the core entities of attention: the session
// state machine, the break schedule and its evaluation, and the lock
// guard. It is independent of any framework or infrastructure.
package domain

import (
	"strings"
	"time"
)

// State is the session lifecycle state. Stopped behaves like Idle but
// remembers that a task was explicitly ended.
type State int

const (
	StateIdle State = iota
	StateActive
	StatePaused
	StateStopped
)

// String returns a lowercase label for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session tracks a single task's lifecycle and accumulated active time.
// Elapsed time is a single uniform formula at display time:
//
//	elapsed = ElapsedBeforePause + (Active ? now - StartedAt : 0)
//
// Resume recomputes StartedAt = now - ElapsedBeforePause so the formula
// holds across any number of pause/resume cycles.
type Session struct {
	ID    string
	Title string
	State State

	// StartedAt is zero exactly when the session is Idle or Stopped.
	StartedAt          time.Time
	ElapsedBeforePause time.Duration

	// EstimateMinutes is 0 when no estimate was given; set on start,
	// cleared on stop.
	EstimateMinutes int

	now func() time.Time
}

// NewSession creates an idle session using the wall clock.
func NewSession() *Session {
	return &Session{State: StateIdle, now: time.Now}
}

// SetClock replaces the session's clock. Tests use this to drive the
// pause/resume algebra deterministically.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Start activates the session for the given task title. Starting is valid
// from any state (starting over an active task restarts it). The title
// must be non-empty after trimming. estimateMinutes <= 0 means no
// estimate.
func (s *Session) Start(title string, estimateMinutes int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTaskName
	}
	s.ID = generateID()
	s.Title = title
	s.State = StateActive
	s.StartedAt = s.now()
	s.ElapsedBeforePause = 0
	if estimateMinutes < 0 {
		estimateMinutes = 0
	}
	s.EstimateMinutes = estimateMinutes
	return nil
}

// Pause freezes the elapsed clock. No-op unless the session is Active.
// Returns true if the state changed.
func (s *Session) Pause() bool {
	if s.State != StateActive {
		return false
	}
	s.ElapsedBeforePause = s.now().Sub(s.StartedAt) + s.ElapsedBeforePause
	s.State = StatePaused
	return true
}

// Resume continues a paused session, rebasing StartedAt so the elapsed
// formula stays uniform. No-op unless the session is Paused. Returns true
// if the state changed.
func (s *Session) Resume() bool {
	if s.State != StatePaused {
		return false
	}
	s.StartedAt = s.now().Add(-s.ElapsedBeforePause)
	s.ElapsedBeforePause = 0
	s.State = StateActive
	return true
}

// Stop ends a running session, clearing time and estimate. It returns
// the title as it stood before stopping and whether the state changed;
// stopping an Idle or already-Stopped session is a no-op, not an error.
func (s *Session) Stop() (string, bool) {
	if !s.Running() {
		return "", false
	}
	title := s.Title
	s.State = StateStopped
	s.Title = ""
	s.StartedAt = time.Time{}
	s.ElapsedBeforePause = 0
	s.EstimateMinutes = 0
	return title, true
}

// Elapsed returns the accumulated active duration.
func (s *Session) Elapsed() time.Duration {
	elapsed := s.ElapsedBeforePause
	if s.State == StateActive {
		elapsed += s.now().Sub(s.StartedAt)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Running reports whether the session is Active or Paused.
func (s *Session) Running() bool {
	return s.State == StateActive || s.State == StatePaused
}
