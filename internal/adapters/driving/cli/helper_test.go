package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/config/file"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/storage/memory"
	"github.com/pinwall-labs/pinwall-cli/internal/core/services"
)

// setupTestServices wires the commands to in-memory services and
// returns a cleanup that restores the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	config, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store := memory.NewKeyValueStore()
	board := services.NewBoardService(store)
	settings := services.NewSettingsService(config, store, board)
	settings.ApplyToBoard()

	oldBoard := boardService
	oldTransfer := transferService
	oldSettings := settingsService

	boardService = board
	transferService = services.NewTransferService(board)
	settingsService = settings

	return func() {
		boardService = oldBoard
		transferService = oldTransfer
		settingsService = oldSettings
	}
}

// execute runs the root command with args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
