//go:build darwin

package lock

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/avdx/attention/internal/ports"
)

const cgSessionPath = "/System/Library/CoreServices/Menu Extras/User.menu/Contents/Resources/CGSession"

// Locker locks the session through CGSession -suspend.
type Locker struct{}

var _ ports.Locker = (*Locker)(nil)

// New returns the macOS locker.
func New() *Locker {
	return &Locker{}
}

// Available reports whether the CGSession helper exists.
func (l *Locker) Available() bool {
	_, err := os.Stat(cgSessionPath)
	return err == nil
}

// Lock suspends the login session, which shows the lock screen.
func (l *Locker) Lock() error {
	out, err := exec.Command(cgSessionPath, "-suspend").CombinedOutput()
	if err != nil {
		return fmt.Errorf("CGSession -suspend: %v: %s", err, out)
	}
	return nil
}
