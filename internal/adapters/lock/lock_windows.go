//go:build windows

package lock

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/avdx/attention/internal/ports"
)

// Locker locks the session through user32 LockWorkStation.
type Locker struct {
	proc *windows.LazyProc
}

var _ ports.Locker = (*Locker)(nil)

// New returns the Windows locker.
func New() *Locker {
	user32 := windows.NewLazySystemDLL("user32.dll")
	return &Locker{proc: user32.NewProc("LockWorkStation")}
}

// Available reports true; user32 is always present.
func (l *Locker) Available() bool {
	return true
}

// Lock calls LockWorkStation. The call only queues the lock; a zero
// return means it could not even be queued.
func (l *Locker) Lock() error {
	ret, _, callErr := l.proc.Call()
	if ret == 0 {
		return fmt.Errorf("LockWorkStation: %w", callErr)
	}
	return nil
}
