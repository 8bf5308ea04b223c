package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/avdx/attention/internal/domain"
)

// State and band colors.
const (
	colorActive  = "#4caf50"
	colorPaused  = "#ff9800"
	colorStopped = "#9e9e9e"

	colorBandUnder       = "#4caf50"
	colorBandApproaching = "#ffeb3b"
	colorBandAt          = "#ff9800"
	colorBandOver        = "#ff3b30"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorStopped))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorStopped)).Padding(1, 1, 0, 1)
	lineStyle  = lipgloss.NewStyle().Padding(0, 1)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBandOver)).Padding(0, 1)

	overlayClockStyle = lipgloss.NewStyle().Bold(true).Padding(1, 1, 0, 1)
	overlayLabelStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color(colorPaused)).Padding(1, 1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorActive))
)

// View renders the current screen: break overlay when a window is
// active, otherwise the start prompt or the status view.
func (m Model) View() string {
	if m.overlay != nil {
		return m.overlayView()
	}
	if m.prompting {
		return m.promptView()
	}
	return m.statusView()
}

// statusView shows the task label, the elapsed line and the estimate
// line, colored by session state and estimate band.
func (m Model) statusView() string {
	session := m.session.Session()

	label := m.cfg.Message
	color := m.cfg.TextColor
	switch session.State {
	case domain.StateActive:
		label = session.Title
	case domain.StatePaused:
		label = "Paused " + session.Title
		color = colorPaused
	case domain.StateStopped:
		color = colorStopped
	default:
		color = colorStopped
	}

	var b strings.Builder
	b.WriteString(titleStyle.Foreground(lipgloss.Color(color)).Render(label))
	b.WriteString("\n")

	if status := m.session.StatusLine(); status != "" {
		b.WriteString(lineStyle.Render(status))
		b.WriteString("\n")
	}
	if text, band := m.session.EstimateLine(); text != "" {
		style := lineStyle.Foreground(lipgloss.Color(bandColor(band)))
		b.WriteString(style.Render(text))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("s:start  p:pause/resume  x:stop  q:quit"))
	return b.String()
}

// promptView renders the two-step start prompt with fuzzy suggestions
// from recent history.
func (m Model) promptView() string {
	var b strings.Builder

	if m.step == promptName {
		b.WriteString(titleStyle.Render("Start a task"))
		b.WriteString("\n")
		b.WriteString(lineStyle.Render(m.nameInput.View()))
		b.WriteString("\n")
		for i, suggestion := range m.suggestions {
			if i == m.suggestIdx {
				b.WriteString(cursorStyle.Render("  > " + suggestion))
			} else {
				b.WriteString(dimStyle.Render("    " + suggestion))
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Start %q", m.pendingName)))
		b.WriteString("\n")
		b.WriteString(lineStyle.Render(m.estimateInput.View()))
		b.WriteString("\n")
	}

	if m.promptErr != "" {
		b.WriteString(errStyle.Render(m.promptErr))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter:confirm  tab:complete  esc:cancel"))
	return b.String()
}

// overlayView is the full-screen break screen: wall clock, the active
// window with its countdown, a progress bar and the day's schedule.
func (m Model) overlayView() string {
	state := m.overlay

	var b strings.Builder
	b.WriteString(overlayClockStyle.Render(state.Now.Format("15:04:05")))
	b.WriteString("\n")
	b.WriteString(overlayLabelStyle.Render(state.Entry.Label))
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(fmt.Sprintf("Back at %s (%s remaining)",
		state.Entry.End, formatCountdown(state.Remaining))))
	b.WriteString("\n\n")

	b.WriteString(lineStyle.Render(m.progress.ViewAs(windowProgress(state.Entry, state.Remaining))))
	b.WriteString("\n\n")

	for i, entry := range state.Schedule {
		marker := "  "
		style := dimStyle
		if i == state.Index {
			marker = "> "
			style = cursorStyle
		}
		b.WriteString(style.Render(" " + marker + entry.String()))
		b.WriteString("\n")
	}
	if state.Next != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" Next: %s", *state.Next)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q:quit"))
	return b.String()
}

// windowProgress returns how far through the window we are, in [0, 1].
func windowProgress(entry domain.Entry, remaining time.Duration) float64 {
	total := time.Duration(entry.End-entry.Start) * time.Minute
	if total <= 0 {
		return 1
	}
	p := 1 - remaining.Seconds()/total.Seconds()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// formatCountdown renders a countdown as MM:SS, or HH:MM:SS once it
// reaches an hour.
func formatCountdown(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func bandColor(band domain.Band) string {
	switch band {
	case domain.BandUnder:
		return colorBandUnder
	case domain.BandApproaching:
		return colorBandApproaching
	case domain.BandAt:
		return colorBandAt
	case domain.BandOver:
		return colorBandOver
	default:
		return colorStopped
	}
}
