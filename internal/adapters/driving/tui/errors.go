package tui

import "errors"

// Errors returned when required ports are missing.
var (
	ErrMissingBoardService    = errors.New("board service is required")
	ErrMissingSettingsService = errors.New("settings service is required")
)
