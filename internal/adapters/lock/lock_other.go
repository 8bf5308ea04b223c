//go:build !windows && !linux && !darwin

package lock

import "github.com/avdx/attention/internal/ports"

// Locker is the no-op fallback for platforms without a lock primitive.
type Locker struct{}

var _ ports.Locker = (*Locker)(nil)

// New returns the no-op locker.
func New() *Locker {
	return &Locker{}
}

// Available reports false; there is nothing to lock with.
func (l *Locker) Available() bool {
	return false
}

// Lock does nothing and succeeds.
func (l *Locker) Lock() error {
	return nil
}
