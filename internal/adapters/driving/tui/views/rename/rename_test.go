package rename

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/messages"
)

func TestOpen_SeedsInput(t *testing.T) {
	v := NewView(nil)

	v.Open(messages.RenameRequested{
		Prompt:    "Rename section",
		Initial:   "Inbox",
		SectionID: 3,
	})

	assert.Equal(t, "Inbox", v.Value())
	assert.Contains(t, v.View(), "Rename section")
}

func TestEnter_SubmitsTitle(t *testing.T) {
	v := NewView(nil)
	v.Open(messages.RenameRequested{Initial: "Inbox", SectionID: 3, NoteID: 9})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.RenameSubmitted)
	require.True(t, ok)
	assert.Equal(t, "Inbox", msg.Title)
	assert.Equal(t, int64(3), msg.SectionID)
	assert.Equal(t, int64(9), msg.NoteID)
}

func TestTyping_EditsTitle(t *testing.T) {
	v := NewView(nil)
	v.Open(messages.RenameRequested{Initial: ""})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h', 'i'}})

	assert.Equal(t, "hi", v.Value())
}
