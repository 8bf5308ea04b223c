// Package services orchestrates the domain core against the ports:
// session control with history recording, and the per-tick break monitor.
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avdx/attention/internal/domain"
	"github.com/avdx/attention/internal/ports"
)

// SessionService drives the session state machine and records every
// transition to history. Recording is optimistic: a persistence failure
// never blocks or rolls back the transition, it is surfaced once through
// the notifier.
type SessionService struct {
	session  *domain.Session
	history  ports.HistoryStore
	notifier ports.Notifier
	git      ports.GitDetector

	// persist is false when --no-persist is set; transitions then leave
	// no trace in the history file.
	persist bool

	now func() time.Time
}

// NewSessionService creates a service around a fresh idle session.
// history, notifier and git may each be nil.
func NewSessionService(history ports.HistoryStore, notifier ports.Notifier, git ports.GitDetector, persist bool) *SessionService {
	return &SessionService{
		session:  domain.NewSession(),
		history:  history,
		notifier: notifier,
		git:      git,
		persist:  persist,
		now:      time.Now,
	}
}

// SetClock replaces the clock for both the service and its session.
func (s *SessionService) SetClock(now func() time.Time) {
	s.now = now
	s.session.SetClock(now)
}

// Session exposes the underlying session for display.
func (s *SessionService) Session() *domain.Session {
	return s.session
}

// Start begins tracking a task, recording a start event annotated with
// the current git branch when one is detectable.
func (s *SessionService) Start(ctx context.Context, title string, estimateMinutes int) error {
	if err := s.session.Start(title, estimateMinutes); err != nil {
		return err
	}
	record := domain.NewRecord(domain.EventStart, s.session.Title, s.now())
	if s.git != nil && s.git.IsAvailable() {
		if info, err := s.git.Detect(ctx, ""); err == nil && info != nil {
			record.Branch = info.Branch
		}
	}
	s.record(ctx, record)
	return nil
}

// Pause freezes the elapsed clock. No-op unless active.
func (s *SessionService) Pause(ctx context.Context) bool {
	if !s.session.Pause() {
		return false
	}
	s.record(ctx, domain.NewRecord(domain.EventPause, s.session.Title, s.now()))
	return true
}

// Resume continues a paused session. No-op unless paused.
func (s *SessionService) Resume(ctx context.Context) bool {
	if !s.session.Resume() {
		return false
	}
	s.record(ctx, domain.NewRecord(domain.EventResume, s.session.Title, s.now()))
	return true
}

// TogglePause pauses an active session or resumes a paused one.
func (s *SessionService) TogglePause(ctx context.Context) bool {
	switch s.session.State {
	case domain.StateActive:
		return s.Pause(ctx)
	case domain.StatePaused:
		return s.Resume(ctx)
	default:
		return false
	}
}

// Stop ends the current task. Returns the stopped task's title and
// whether anything was running.
func (s *SessionService) Stop(ctx context.Context) (string, bool) {
	title, changed := s.session.Stop()
	if !changed {
		return "", false
	}
	s.record(ctx, domain.NewRecord(domain.EventStop, title, s.now()))
	return title, true
}

// StatusLine renders the start time and elapsed duration of a running
// session, empty otherwise.
func (s *SessionService) StatusLine() string {
	if !s.session.Running() {
		return ""
	}
	return fmt.Sprintf("Start Time %s    %s",
		s.session.StartedAt.Format("15:04"),
		domain.ElapsedText(s.session.Elapsed()))
}

// EstimateLine renders the estimate text and its band for a running
// session with an estimate, otherwise empty text and BandNone.
func (s *SessionService) EstimateLine() (string, domain.Band) {
	if !s.session.Running() || s.session.EstimateMinutes <= 0 {
		return "", domain.BandNone
	}
	elapsed := s.session.Elapsed()
	return domain.EstimateText(elapsed, s.session.EstimateMinutes),
		domain.EstimateBand(elapsed, s.session.EstimateMinutes)
}

// RecentTitles returns distinct task titles from history, most recent
// first, capped at limit. Used for start-prompt suggestions.
func (s *SessionService) RecentTitles(ctx context.Context, limit int) []string {
	if s.history == nil {
		return nil
	}
	all, err := s.history.All(ctx)
	if err != nil {
		return nil
	}

	days := make([]string, 0, len(all))
	for day := range all {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	seen := make(map[string]struct{})
	titles := make([]string, 0, limit)
	for _, day := range days {
		records := all[day]
		for i := len(records) - 1; i >= 0; i-- {
			r := records[i]
			if r.Event != domain.EventStart || r.Title == "" {
				continue
			}
			if _, ok := seen[r.Title]; ok {
				continue
			}
			seen[r.Title] = struct{}{}
			titles = append(titles, r.Title)
			if limit > 0 && len(titles) >= limit {
				return titles
			}
		}
	}
	return titles
}

func (s *SessionService) record(ctx context.Context, record domain.Record) {
	if !s.persist || s.history == nil {
		return
	}
	if err := s.history.Append(ctx, record); err != nil && s.notifier != nil {
		_ = s.notifier.NotifyOnce("history-append", "attention",
			fmt.Sprintf("Failed to record history: %v", err))
	}
}
