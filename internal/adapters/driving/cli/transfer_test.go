package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

// Export Command Tests

func TestExportCmd_WritesToStdout(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "export")

	assert.NoError(t, err)
	assert.Contains(t, out, `"version": "1.0"`)
	assert.Contains(t, out, `"exportDate"`)
	assert.Contains(t, out, `"data"`)
}

func TestExportCmd_WritesToFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "board.json")
	out, err := execute(t, "export", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Board exported to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "1.0"`)
}

// Import Command Tests

func TestImportCmd_ReplacesBoard(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "board.json")
	payload := `[{"id":7,"title":"Imported","notes":[]}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	out, err := execute(t, "import", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Board imported from")

	sections := boardService.Sections()
	require.Len(t, sections, 1)
	assert.Equal(t, "Imported", sections[0].Title)
}

func TestImportCmd_RejectsMalformedFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := boardService.CreateNote(1, domain.Note{Title: "keep me"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0600))

	_, err = execute(t, "import", path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid board export")

	// The board kept its notes.
	sec, err := boardService.Section(1)
	require.NoError(t, err)
	assert.Len(t, sec.Notes, 1)
}

func TestImportCmd_RequiresFileArg(t *testing.T) {
	_, err := execute(t, "import")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestExportCmd_ServiceNotConfigured(t *testing.T) {
	oldService := transferService
	transferService = nil
	defer func() {
		transferService = oldService
	}()

	_, err := execute(t, "export")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transfer service not configured")
}
