package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/storage/memory"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/messages"
	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/services"
	"github.com/pinwall-labs/pinwall-cli/internal/core/shorthand"
)

func newTestEditor(t *testing.T, content string) (*View, *services.BoardService, int64) {
	t.Helper()

	board := services.NewBoardService(memory.NewKeyValueStore())
	note, err := board.CreateNote(1, domain.Note{Title: "note", Content: content})
	require.NoError(t, err)

	v := NewView(nil, nil, board)
	v.SetDimensions(100, 30)
	require.NoError(t, v.Open(1, note.ID))
	return v, board, note.ID
}

func TestOpen_LoadsNoteContent(t *testing.T) {
	v, _, noteID := newTestEditor(t, "hello")

	assert.Equal(t, "hello", v.Value())
	assert.Equal(t, noteID, v.NoteID())
}

func TestOpen_UnknownNote(t *testing.T) {
	board := services.NewBoardService(memory.NewKeyValueStore())
	v := NewView(nil, nil, board)

	assert.Error(t, v.Open(1, 99))
}

func TestSave_NormalisesShorthand(t *testing.T) {
	v, board, noteID := newTestEditor(t, "* a\n* \n* b")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.NoteSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	assert.Equal(t, noteID, saved.NoteID)

	// The bare marker item was pruned on save.
	note, _, err := board.FindNote(noteID)
	require.NoError(t, err)
	assert.Equal(t, "* a\n* b", note.Content)
}

func TestToggleCheckbox_ChecksTheCursorLine(t *testing.T) {
	v, _, _ := newTestEditor(t, "> buy milk")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "> [x] buy milk", v.Value())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "> buy milk", v.Value())
}

func TestToggleCheckbox_SurvivesSaveAndReload(t *testing.T) {
	v, board, noteID := newTestEditor(t, "> buy milk")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.NoteSaved)
	require.True(t, ok)
	require.NoError(t, saved.Err)

	note, _, err := board.FindNote(noteID)
	require.NoError(t, err)
	reloaded := shorthand.Parse(note.Content)
	require.Len(t, reloaded, 1)
	require.Len(t, reloaded[0].Items, 1)
	assert.True(t, reloaded[0].Items[0].Checked)
	assert.Equal(t, "buy milk", reloaded[0].Items[0].Text)
}

func TestToggleCheckbox_IgnoresNonCheckboxLines(t *testing.T) {
	v, _, _ := newTestEditor(t, "* item")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, "* item", v.Value())
}

func TestMarkCursor_CountsExtraCursors(t *testing.T) {
	v, _, _ := newTestEditor(t, "aa bb")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})

	assert.Equal(t, 1, v.Marks())
}

func TestTyping_InvalidatesMarks(t *testing.T) {
	v, _, _ := newTestEditor(t, "aa bb")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	require.Equal(t, 1, v.Marks())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Equal(t, 0, v.Marks())
}

func TestWrapCode_AppliesAtMarkedCursor(t *testing.T) {
	// Cursor starts at offset 0; mark it, then wrap. The collapsed
	// selection gets a backtick pair inserted around it.
	v, _, _ := newTestEditor(t, "go test")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlB})

	assert.Contains(t, v.Value(), "`")
}

func TestUndo_RestoresText(t *testing.T) {
	v, _, _ := newTestEditor(t, "go test")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	require.NotEqual(t, "go test", v.Value())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})

	assert.Equal(t, "go test", v.Value())
}

func TestView_ShowsCursorCount(t *testing.T) {
	v, _, _ := newTestEditor(t, "aa bb")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})

	assert.Contains(t, v.View(), "2 cursors")
}
