package driving

import (
	"context"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

// SettingsService manages application settings: the autosave toggle and
// the colour theme.
type SettingsService interface {
	// AutoSaveEnabled reports whether debounced autosave is on.
	// Defaults to true when never configured.
	AutoSaveEnabled() bool

	// SetAutoSaveEnabled flips the autosave toggle and mirrors it into
	// the board store under the shared autoSaveEnabled key.
	SetAutoSaveEnabled(ctx context.Context, enabled bool) error

	// Theme returns the active theme (defaults merged with overrides).
	Theme() domain.Theme

	// SetThemeColour overrides one theme colour variable.
	SetThemeColour(name, hex string) error

	// SetCustomColour assigns one of the custom colour slots.
	SetCustomColour(slot int, hex string) error

	// ExportTheme serialises the theme into the theme file format.
	ExportTheme() ([]byte, error)

	// ImportTheme replaces the theme from an exported theme file.
	// Invalid payloads mutate nothing.
	ImportTheme(data []byte) error
}
