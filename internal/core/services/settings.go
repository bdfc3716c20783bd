package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driven"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAutoSave     = "autosave.enabled"
	themeKeyPrefix  = "theme.colour."
	customKeyPrefix = "theme.custom_"
)

// SettingsService manages the autosave toggle and the colour theme.
// Settings live in the TOML config store; the autosave flag is also
// mirrored into the board store under the shared key so other writers
// of the store see it.
type SettingsService struct {
	config driven.ConfigStore
	store  driven.KeyValueStore
	board  *BoardService
}

// NewSettingsService creates a settings service.
func NewSettingsService(config driven.ConfigStore, store driven.KeyValueStore, board *BoardService) *SettingsService {
	return &SettingsService{config: config, store: store, board: board}
}

// ApplyToBoard pushes the persisted autosave setting onto the board.
// Called once at startup.
func (s *SettingsService) ApplyToBoard() {
	s.board.SetAutoSave(s.AutoSaveEnabled())
}

// AutoSaveEnabled reports whether debounced autosave is on. Defaults to
// true when never configured.
func (s *SettingsService) AutoSaveEnabled() bool {
	if _, ok := s.config.Get(keyAutoSave); !ok {
		return true
	}
	return s.config.GetBool(keyAutoSave)
}

// SetAutoSaveEnabled flips the autosave toggle, mirrors it into the
// board store, and applies it to the board.
func (s *SettingsService) SetAutoSaveEnabled(ctx context.Context, enabled bool) error {
	if err := s.config.Set(keyAutoSave, enabled); err != nil {
		return fmt.Errorf("saving autosave setting: %w", err)
	}
	if err := s.store.Set(ctx, driven.KeyAutoSave, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("mirroring autosave setting: %w", err)
	}
	s.board.SetAutoSave(enabled)
	return nil
}

// Theme returns the active theme: the defaults with any configured
// overrides applied.
func (s *SettingsService) Theme() domain.Theme {
	t := domain.DefaultTheme()
	for name := range t.Colours {
		if v := s.config.GetString(themeKeyPrefix + name); v != "" {
			t.Colours[name] = v
		}
	}
	for i := 0; i < domain.CustomColourSlots; i++ {
		if v := s.config.GetString(customKey(i)); v != "" {
			t.CustomColours[i] = v
		}
	}
	return t
}

// SetThemeColour overrides one theme colour variable. Unknown variable
// names and malformed hex values mutate nothing.
func (s *SettingsService) SetThemeColour(name, hex string) error {
	if !domain.ValidHexColour(hex) {
		return fmt.Errorf("%q: %w", hex, domain.ErrInvalidColour)
	}
	defaults := domain.DefaultTheme()
	if _, ok := defaults.Colours[name]; !ok {
		return fmt.Errorf("theme variable %q: %w", name, domain.ErrNotFound)
	}
	return s.config.Set(themeKeyPrefix+name, hex)
}

// SetCustomColour assigns one of the custom colour slots.
func (s *SettingsService) SetCustomColour(slot int, hex string) error {
	if slot < 0 || slot >= domain.CustomColourSlots {
		return fmt.Errorf("custom colour slot %d: %w", slot, domain.ErrInvalidInput)
	}
	if !domain.ValidHexColour(hex) {
		return fmt.Errorf("%q: %w", hex, domain.ErrInvalidColour)
	}
	return s.config.Set(customKey(slot), hex)
}

// ExportTheme serialises the active theme into the theme file format:
// {"theme":{name:hex,...},"customColors":[...]}.
func (s *SettingsService) ExportTheme() ([]byte, error) {
	data, err := json.MarshalIndent(s.Theme(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding theme: %w", err)
	}
	return data, nil
}

// ImportTheme replaces the theme from an exported theme file. The
// payload is fully validated before anything is written, so invalid
// input mutates nothing.
func (s *SettingsService) ImportTheme(data []byte) error {
	var t domain.Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := t.Validate(); err != nil {
		return err
	}

	defaults := domain.DefaultTheme()
	for name := range t.Colours {
		if _, ok := defaults.Colours[name]; !ok {
			return fmt.Errorf("theme variable %q: %w", name, domain.ErrNotFound)
		}
	}

	for name, hex := range t.Colours {
		if err := s.config.Set(themeKeyPrefix+name, hex); err != nil {
			return err
		}
	}
	for i, hex := range t.CustomColours {
		if err := s.config.Set(customKey(i), hex); err != nil {
			return err
		}
	}
	return nil
}

func customKey(slot int) string {
	return fmt.Sprintf("%s%d", customKeyPrefix, slot+1)
}
