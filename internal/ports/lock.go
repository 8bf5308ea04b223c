package ports

// Locker locks the workstation. Implementations are platform-gated: on
// platforms without a lock primitive Lock is a no-op returning nil, and
// that absence is not a failure.
type Locker interface {
	// Lock asks the OS to lock the session. Best effort, fire and
	// forget.
	Lock() error

	// Available reports whether this platform has a real lock primitive.
	Available() bool
}
