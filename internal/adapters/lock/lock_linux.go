//go:build linux

package lock

import (
	"fmt"
	"os/exec"

	"github.com/avdx/attention/internal/ports"
)

// Locker locks the session through loginctl, which covers systemd-logind
// desktops regardless of the display server.
type Locker struct{}

var _ ports.Locker = (*Locker)(nil)

// New returns the Linux locker.
func New() *Locker {
	return &Locker{}
}

// Available reports whether loginctl is on PATH.
func (l *Locker) Available() bool {
	_, err := exec.LookPath("loginctl")
	return err == nil
}

// Lock runs "loginctl lock-session" for the current session.
func (l *Locker) Lock() error {
	out, err := exec.Command("loginctl", "lock-session").CombinedOutput()
	if err != nil {
		return fmt.Errorf("loginctl lock-session: %v: %s", err, out)
	}
	return nil
}
