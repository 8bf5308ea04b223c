// Package ports defines the interfaces between the core of attention and
// its external collaborators (persistence, OS lock, notifications, git).
// These are driven ports, implemented by adapters.
package ports

import (
	"context"

	"github.com/avdx/attention/internal/domain"
)

// HistoryStore persists the append-only per-day event log.
type HistoryStore interface {
	// Append adds a record under its calendar day. The file is
	// read-modified-written whole; records are never mutated after
	// append.
	Append(ctx context.Context, record domain.Record) error

	// Day returns the records for one day key (insertion order), or an
	// empty slice.
	Day(ctx context.Context, day string) ([]domain.Record, error)

	// All returns the full history keyed by day. A corrupt or missing
	// file loads as empty, never as an error.
	All(ctx context.Context) (map[string][]domain.Record, error)
}
