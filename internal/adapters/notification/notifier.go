// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/avdx/attention/internal/ports"
)

// Notifier shows desktop notifications through beeep. NotifyOnce keys
// are remembered for the process lifetime; the tick loop uses them so a
// failure repeating every second is reported a single time.
type Notifier struct {
	enabled bool
	seen    map[string]struct{}
}

var _ ports.Notifier = (*Notifier)(nil)

// New creates a notifier. A disabled notifier swallows everything.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, seen: make(map[string]struct{})}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyOnce displays a notification at most once per key.
func (n *Notifier) NotifyOnce(key, title, message string) error {
	if _, ok := n.seen[key]; ok {
		return nil
	}
	n.seen[key] = struct{}{}
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}
