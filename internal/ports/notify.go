package ports

// Notifier surfaces errors and notices to the user without blocking the
// core. Implementations must be cheap to call from the tick loop.
type Notifier interface {
	// Notify shows a message.
	Notify(title, message string) error

	// NotifyOnce shows a message at most once per key for the process
	// lifetime. Used for repeating failures (lock call, persistence)
	// that must not spam the user.
	NotifyOnce(key, title, message string) error
}
