package model

import "errors"

// Error taxonomy shared by the store backends and the core operations.
// Resolution and parse failures are semantic, never transient; nothing in
// this package is retried.
var (
	ErrAccessDenied     = errors.New("model: reminders access denied")
	ErrListNotFound     = errors.New("model: list not found")
	ErrReminderNotFound = errors.New("model: reminder not found")
	ErrFetchFailed      = errors.New("model: fetch failed")
	ErrSaveFailed       = errors.New("model: save failed")
	ErrInvalidDate      = errors.New("model: invalid date")
	ErrInvalidEnum      = errors.New("model: invalid enum value")
)
