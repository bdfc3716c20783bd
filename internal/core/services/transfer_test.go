package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/storage/memory"
	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driven"
)

func TestExport_WritesVersionedEnvelope(t *testing.T) {
	board, _ := newTestBoard(t)
	_, err := board.CreateNote(1, domain.Note{Title: "n"})
	require.NoError(t, err)

	svc := NewTransferService(board)
	svc.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}

	data, err := svc.Export(context.Background())
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, ExportVersion, env.Version)
	assert.Equal(t, "2024-05-01T12:00:00Z", env.ExportDate)
	require.Len(t, env.Data, 1)
	require.Len(t, env.Data[0].Notes, 1)
}

func TestImport_AcceptsEnvelopeAndBareArray(t *testing.T) {
	payload := `[{"id":9,"title":"Imported","notes":[]}]`
	envelope := `{"version":"1.0","exportDate":"2024-01-01T00:00:00Z","data":` + payload + `}`

	for name, input := range map[string]string{"bare": payload, "envelope": envelope} {
		t.Run(name, func(t *testing.T) {
			board, _ := newTestBoard(t)
			svc := NewTransferService(board)

			require.NoError(t, svc.Import(context.Background(), []byte(input)))

			sections := board.Sections()
			require.Len(t, sections, 1)
			assert.Equal(t, int64(9), sections[0].ID)
			assert.Equal(t, "Imported", sections[0].Title)
		})
	}
}

func TestImport_MalformedLeavesBoardUntouched(t *testing.T) {
	board, _ := newTestBoard(t)
	_, err := board.CreateSection("Precious")
	require.NoError(t, err)
	before := board.Sections()

	svc := NewTransferService(board)

	for _, payload := range []string{`{bad`, `{"data":"nope"}`, `42`} {
		err := svc.Import(context.Background(), []byte(payload))
		assert.ErrorIs(t, err, domain.ErrMalformedImport)
	}
	assert.Equal(t, before, board.Sections())
}

func TestImport_PersistsReplacedBoard(t *testing.T) {
	store := memory.NewKeyValueStore()
	board := NewBoardService(store)
	svc := NewTransferService(board)
	ctx := context.Background()

	require.NoError(t, svc.Import(ctx, []byte(`[{"id":5,"title":"X","notes":[]}]`)))

	raw, ok, err := store.Get(ctx, driven.KeyBoard)
	require.NoError(t, err)
	require.True(t, ok)

	var sections []domain.Section
	require.NoError(t, json.Unmarshal([]byte(raw), &sections))
	require.Len(t, sections, 1)
	assert.Equal(t, int64(5), sections[0].ID)
}

func TestImport_PreservesActiveSelectionWhenPossible(t *testing.T) {
	board, _ := newTestBoard(t)
	svc := NewTransferService(board)
	ctx := context.Background()

	// Active section 1 survives the import, so it stays selected.
	require.NoError(t, svc.Import(ctx,
		[]byte(`[{"id":2,"title":"A","notes":[]},{"id":1,"title":"B","notes":[]}]`)))
	assert.Equal(t, int64(1), board.ActiveSection())

	// It disappears in the next import; fall back to the first section.
	require.NoError(t, svc.Import(ctx, []byte(`[{"id":30,"title":"C","notes":[]}]`)))
	assert.Equal(t, int64(30), board.ActiveSection())
}

func TestExportImport_FileRoundTrip(t *testing.T) {
	board, _ := newTestBoard(t)
	_, err := board.CreateNote(1, domain.Note{
		Title: "note", Content: "> task", X: 3, Y: 4,
		Width: 140, Height: 90,
		Style: map[string]string{"color": "#F38BA8"},
	})
	require.NoError(t, err)
	before := board.Sections()

	svc := NewTransferService(board)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.json")

	require.NoError(t, svc.ExportToFile(ctx, path))

	other, _ := newTestBoard(t)
	otherSvc := NewTransferService(other)
	require.NoError(t, otherSvc.ImportFromFile(ctx, path))

	assert.Equal(t, before, other.Sections())
}

func TestImportFromFile_MissingFile(t *testing.T) {
	board, _ := newTestBoard(t)
	svc := NewTransferService(board)

	err := svc.ImportFromFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
