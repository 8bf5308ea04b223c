package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdx/attention/internal/adapters/watch"
	"github.com/avdx/attention/internal/config"
	"github.com/avdx/attention/internal/services"
)

// Options wires the overlay program.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Session    *services.SessionService
	Monitor    *services.Monitor
}

// Run starts the overlay and blocks until the user quits. While running,
// edits to the config file are picked up live: the watcher goroutine
// loads the file and hands the result to the update loop via Send, so
// the schedule swap happens on the program goroutine like every other
// state change.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(opts.Config, opts.Session, opts.Monitor)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	watcher, err := watch.New(opts.ConfigPath, func() {
		program.Send(configReloadedMsg{cfg: config.Load(opts.ConfigPath)})
	})
	if err == nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go watcher.Run(watchCtx)
		defer watcher.Close()
	}
	// A watcher failure is not fatal; the overlay just will not reload
	// config edits live.

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run overlay: %w", err)
	}
	return nil
}
