package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutosaveCmd_ReportsDefault(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "autosave")

	assert.NoError(t, err)
	assert.Contains(t, out, "Autosave is on.")
}

func TestAutosaveCmd_TurnsOff(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "autosave", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "Autosave turned off.")
	assert.False(t, settingsService.AutoSaveEnabled())

	out, err = execute(t, "autosave")
	require.NoError(t, err)
	assert.Contains(t, out, "Autosave is off.")
}

func TestAutosaveCmd_RejectsUnknownArgument(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "autosave", "maybe")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `expected "on" or "off"`)
}

func TestAutosaveCmd_ServiceNotConfigured(t *testing.T) {
	oldService := settingsService
	settingsService = nil
	defer func() {
		settingsService = oldService
	}()

	_, err := execute(t, "autosave")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
