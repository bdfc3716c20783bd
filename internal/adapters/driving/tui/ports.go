// Package tui provides the interactive terminal user interface.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driven"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Board owns the section and note state.
	Board driving.BoardService

	// Transfer handles board export and import.
	Transfer driving.TransferService

	// Settings manages autosave and the colour theme.
	Settings driving.SettingsService

	// Watcher signals external changes to the board store. Optional;
	// when nil the TUI never reloads behind the user's back.
	Watcher driven.ChangeWatcher
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Board == nil {
		return ErrMissingBoardService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
