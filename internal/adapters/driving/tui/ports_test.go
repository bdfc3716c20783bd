package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/config/file"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/storage/memory"
	"github.com/pinwall-labs/pinwall-cli/internal/core/services"
)

// newTestPorts builds ports backed by in-memory services.
func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	config, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store := memory.NewKeyValueStore()
	board := services.NewBoardService(store)
	settings := services.NewSettingsService(config, store, board)
	settings.ApplyToBoard()

	return &Ports{
		Board:    board,
		Transfer: services.NewTransferService(board),
		Settings: settings,
	}
}

func TestPortsValidate_AllSet(t *testing.T) {
	ports := newTestPorts(t)

	assert.NoError(t, ports.Validate())
}

func TestPortsValidate_MissingBoard(t *testing.T) {
	ports := newTestPorts(t)
	ports.Board = nil

	assert.ErrorIs(t, ports.Validate(), ErrMissingBoardService)
}

func TestPortsValidate_MissingSettings(t *testing.T) {
	ports := newTestPorts(t)
	ports.Settings = nil

	assert.ErrorIs(t, ports.Validate(), ErrMissingSettingsService)
}

func TestPortsValidate_WatcherOptional(t *testing.T) {
	ports := newTestPorts(t)
	ports.Watcher = nil

	assert.NoError(t, ports.Validate())
}
