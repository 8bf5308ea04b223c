package domain

import "errors"

// Common domain errors.
var (
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
	ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM")
	ErrEntryOrder       = errors.New("schedule entry start must be before end")
)
