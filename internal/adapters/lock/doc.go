// Package lock provides the platform workstation locker. Each supported
// OS has its own implementation behind build tags; unsupported platforms
// get a no-op locker that reports itself unavailable.
package lock
