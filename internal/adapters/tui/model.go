// Package tui renders the focus overlay in the terminal using the
// Bubbletea framework: the task status view, the start prompt and the
// full-screen break overlay.
package tui

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/sahilm/fuzzy"

	"github.com/avdx/attention/internal/config"
	"github.com/avdx/attention/internal/services"
)

const maxSuggestions = 5

// tickMsg is sent once per second. The generation tag makes stale ticks
// from a superseded ticker harmless: they are dropped instead of
// double-driving the loop.
type tickMsg struct {
	gen int
	t   time.Time
}

// configReloadedMsg carries a freshly loaded config from the file
// watcher goroutine into the update loop.
type configReloadedMsg struct {
	cfg *config.Config
}

// promptStep is the current field of the start prompt.
type promptStep int

const (
	promptName promptStep = iota
	promptEstimate
)

// Model is the Bubbletea model. All state mutation happens in Update,
// on the single program goroutine; the monitor and session service are
// never touched from anywhere else.
type Model struct {
	session *services.SessionService
	monitor *services.Monitor
	cfg     *config.Config

	width  int
	height int
	now    time.Time

	// overlay is non-nil while a break window is active.
	overlay *services.OverlayState

	progress progress.Model
	tickGen  int

	// Start prompt state.
	prompting     bool
	step          promptStep
	nameInput     textinput.Model
	estimateInput textinput.Model
	recent        []string
	suggestions   []string
	suggestIdx    int
	promptErr     string

	pendingName string
}

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// NewModel creates the model around an already-wired session service and
// monitor.
func NewModel(cfg *config.Config, session *services.SessionService, monitor *services.Monitor) Model {
	w := getTerminalWidth()

	pbar := progress.New(progress.WithDefaultGradient())
	pbar.Width = w - 16

	name := textinput.New()
	name.Placeholder = "What are you working on?"
	name.CharLimit = 120
	name.Width = w - 10

	estimate := textinput.New()
	estimate.Placeholder = "Estimate in minutes (Enter to skip)"
	estimate.CharLimit = 4
	estimate.Width = w - 10

	return Model{
		session:       session,
		monitor:       monitor,
		cfg:           cfg,
		width:         w,
		now:           time.Now(),
		progress:      pbar,
		nameInput:     name,
		estimateInput: estimate,
	}
}

// Init starts the 1 Hz ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickGen)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 16
		m.nameInput.Width = msg.Width - 10
		m.estimateInput.Width = msg.Width - 10
		return m, nil

	case tickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		m.now = msg.t
		m.overlay = nil
		if m.monitor.Enabled() {
			m.overlay = m.monitor.Tick(msg.t)
		}
		if m.overlay != nil && m.prompting {
			// The break overlay takes over the screen; abandon the
			// half-typed prompt rather than resuming it afterwards.
			m.closePrompt()
		}
		return m, tickCmd(m.tickGen)

	case configReloadedMsg:
		m.cfg = msg.cfg
		m.monitor.SetSchedule(msg.cfg.DomainSchedule())
		// Cancel-and-reschedule: the new generation's tick fires
		// immediately-ish and the superseded one is dropped on arrival.
		m.tickGen++
		return m, tickCmd(m.tickGen)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// During a break the overlay owns the screen; only quitting works.
	if m.overlay != nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.prompting {
		return m.updatePrompt(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.openPrompt()
		return m, m.nameInput.Cursor.BlinkCmd()
	case "p":
		m.session.TogglePause(context.Background())
	case "x":
		m.session.Stop(context.Background())
	}
	return m, nil
}

func (m *Model) openPrompt() {
	m.prompting = true
	m.step = promptName
	m.promptErr = ""
	m.pendingName = ""
	m.nameInput.Reset()
	m.nameInput.Focus()
	m.estimateInput.Reset()
	m.estimateInput.Blur()
	m.recent = m.session.RecentTitles(context.Background(), 50)
	m.refreshSuggestions()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.nameInput.Blur()
	m.estimateInput.Blur()
	m.suggestions = nil
	m.promptErr = ""
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		if m.step == promptName {
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				m.promptErr = "Task name cannot be empty"
				return m, nil
			}
			m.pendingName = name
			m.step = promptEstimate
			m.promptErr = ""
			m.nameInput.Blur()
			m.estimateInput.Focus()
			return m, m.estimateInput.Cursor.BlinkCmd()
		}

		estimate, err := parseEstimate(m.estimateInput.Value())
		if err != nil {
			m.promptErr = "Estimate must be a whole number of minutes"
			return m, nil
		}
		if err := m.session.Start(context.Background(), m.pendingName, estimate); err != nil {
			m.promptErr = err.Error()
			return m, nil
		}
		m.closePrompt()
		return m, nil

	case "up":
		if m.step == promptName && m.suggestIdx > 0 {
			m.suggestIdx--
		}
		return m, nil

	case "down":
		if m.step == promptName && m.suggestIdx < len(m.suggestions)-1 {
			m.suggestIdx++
		}
		return m, nil

	case "tab":
		if m.step == promptName && len(m.suggestions) > 0 {
			m.nameInput.SetValue(m.suggestions[m.suggestIdx])
			m.nameInput.CursorEnd()
			m.refreshSuggestions()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.step == promptName {
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.refreshSuggestions()
	} else {
		m.estimateInput, cmd = m.estimateInput.Update(msg)
	}
	return m, cmd
}

// refreshSuggestions re-ranks recent task titles against the current
// input. An empty input shows the most recent titles as-is.
func (m *Model) refreshSuggestions() {
	query := strings.TrimSpace(m.nameInput.Value())
	if query == "" {
		if len(m.recent) > maxSuggestions {
			m.suggestions = m.recent[:maxSuggestions]
		} else {
			m.suggestions = m.recent
		}
		m.suggestIdx = 0
		return
	}

	matches := fuzzy.Find(query, m.recent)
	suggestions := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		suggestions = append(suggestions, m.recent[match.Index])
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	m.suggestions = suggestions
	m.suggestIdx = 0
}

func parseEstimate(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

// tickCmd schedules the next tick for the given generation.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, t: t}
	})
}
