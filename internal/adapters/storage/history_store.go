// Package storage persists the per-day history log as a single JSON
// file, read and rewritten whole on every append.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/avdx/attention/internal/domain"
	"github.com/avdx/attention/internal/ports"
)

// HistoryStore is the file-backed implementation of ports.HistoryStore.
// The file maps "YYYY-MM-DD" day keys to record arrays in append order.
type HistoryStore struct {
	path string
}

var _ ports.HistoryStore = (*HistoryStore)(nil)

// NewHistoryStore creates a store for the given file path. The file is
// created lazily on first append.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Append loads the whole file, adds the record under its day and writes
// the file back.
func (s *HistoryStore) Append(ctx context.Context, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	all := s.load()
	day := record.Day()
	all[day] = append(all[day], record)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	data, err := sonic.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Day returns the records for one day key, empty when absent.
func (s *HistoryStore) Day(ctx context.Context, day string) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load()[day], nil
}

// All returns the full history keyed by day.
func (s *HistoryStore) All(ctx context.Context) (map[string][]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load(), nil
}

// load reads the history file. A missing or corrupt file loads as empty
// history; the next append rewrites it cleanly.
func (s *HistoryStore) load() map[string][]domain.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string][]domain.Record{}
	}
	var all map[string][]domain.Record
	if err := sonic.Unmarshal(data, &all); err != nil || all == nil {
		return map[string][]domain.Record{}
	}
	return all
}
