package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/config/file"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/storage/memory"
	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driven"
)

func newTestSettings(t *testing.T) (*SettingsService, *memory.KeyValueStore, *BoardService) {
	t.Helper()

	config, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store := memory.NewKeyValueStore()
	board := NewBoardService(store)
	return NewSettingsService(config, store, board), store, board
}

func TestAutoSave_DefaultsToEnabled(t *testing.T) {
	svc, _, _ := newTestSettings(t)

	assert.True(t, svc.AutoSaveEnabled())
}

func TestSetAutoSaveEnabled_PersistsAndMirrors(t *testing.T) {
	svc, store, _ := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAutoSaveEnabled(ctx, false))

	assert.False(t, svc.AutoSaveEnabled())
	val, ok, err := store.Get(ctx, driven.KeyAutoSave)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", val)

	require.NoError(t, svc.SetAutoSaveEnabled(ctx, true))
	val, _, err = store.Get(ctx, driven.KeyAutoSave)
	require.NoError(t, err)
	assert.Equal(t, "true", val)
}

func TestTheme_DefaultsUntilOverridden(t *testing.T) {
	svc, _, _ := newTestSettings(t)

	assert.Equal(t, domain.DefaultTheme(), svc.Theme())

	require.NoError(t, svc.SetThemeColour("primary", "#ABCDEF"))
	require.NoError(t, svc.SetCustomColour(0, "#123"))

	got := svc.Theme()
	assert.Equal(t, "#ABCDEF", got.Colours["primary"])
	assert.Equal(t, "#123", got.CustomColours[0])

	// Everything else stays at defaults.
	want := domain.DefaultTheme()
	for name, hex := range want.Colours {
		if name == "primary" {
			continue
		}
		assert.Equal(t, hex, got.Colours[name])
	}
}

func TestSetThemeColour_RejectsBadInput(t *testing.T) {
	svc, _, _ := newTestSettings(t)

	err := svc.SetThemeColour("primary", "purple")
	assert.ErrorIs(t, err, domain.ErrInvalidColour)

	err = svc.SetThemeColour("nonsense", "#FFFFFF")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Nothing leaked into the active theme.
	assert.Equal(t, domain.DefaultTheme(), svc.Theme())
}

func TestSetCustomColour_RejectsBadSlot(t *testing.T) {
	svc, _, _ := newTestSettings(t)

	assert.ErrorIs(t, svc.SetCustomColour(-1, "#FFF"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.SetCustomColour(domain.CustomColourSlots, "#FFF"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.SetCustomColour(0, "red"), domain.ErrInvalidColour)
}

func TestExportImportTheme_RoundTrip(t *testing.T) {
	svc, _, _ := newTestSettings(t)
	require.NoError(t, svc.SetThemeColour("primary", "#112233"))
	require.NoError(t, svc.SetCustomColour(2, "#44AA88"))

	data, err := svc.ExportTheme()
	require.NoError(t, err)

	// The file format carries both maps under their JSON names.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "theme")
	assert.Contains(t, raw, "customColors")

	other, _, _ := newTestSettings(t)
	require.NoError(t, other.ImportTheme(data))
	assert.Equal(t, svc.Theme(), other.Theme())
}

func TestImportTheme_InvalidMutatesNothing(t *testing.T) {
	svc, _, _ := newTestSettings(t)
	before := svc.Theme()

	cases := []string{
		`{not json`,
		`{"theme":{"primary":"blue"},"customColors":[]}`,
		`{"theme":{"unknown":"#FFFFFF"},"customColors":[]}`,
	}
	for _, payload := range cases {
		assert.Error(t, svc.ImportTheme([]byte(payload)))
	}
	assert.Equal(t, before, svc.Theme())
}

func TestApplyToBoard_PushesPersistedSetting(t *testing.T) {
	svc, _, board := newTestSettings(t)
	require.NoError(t, svc.SetAutoSaveEnabled(context.Background(), false))

	// A fresh board starts with autosave off until settings are applied.
	board.SetAutoSave(true)
	svc.ApplyToBoard()

	// Mutations must not schedule a save now.
	_, err := board.CreateSection("quiet")
	require.NoError(t, err)
	assert.False(t, board.saver.Stop())
}
