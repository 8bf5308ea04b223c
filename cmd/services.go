package cmd

import (
	"github.com/avdx/attention/internal/adapters/git"
	"github.com/avdx/attention/internal/adapters/lock"
	"github.com/avdx/attention/internal/adapters/notification"
	"github.com/avdx/attention/internal/adapters/storage"
	"github.com/avdx/attention/internal/config"
	"github.com/avdx/attention/internal/ports"
	"github.com/avdx/attention/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	history    ports.HistoryStore
	notifier   *notification.Notifier
	git        ports.GitDetector
	locker     ports.Locker
	session    *services.SessionService
	monitor    *services.Monitor
}

// app holds all initialized dependencies, populated by
// initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads the config and wires the adapters. Config
// problems never fail startup: a missing or corrupt file just yields the
// defaults.
func initializeServices() error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}
	app.configPath = path
	app.config = config.Load(path)

	app.notifier = notification.New(true)
	app.history = storage.NewHistoryStore(config.HistoryPathFor(path))
	app.git = git.NewDetector()
	app.locker = lock.New()

	app.session = services.NewSessionService(app.history, app.notifier, app.git, true)
	app.monitor = services.NewMonitor(app.config.DomainSchedule(), app.locker, app.notifier)

	return nil
}
