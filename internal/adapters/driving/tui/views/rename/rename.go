// Package rename provides the title prompt used for sections and notes.
package rename

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/messages"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/styles"
)

// View is a one-line input prompt.
type View struct {
	styles *styles.Styles

	input     textinput.Model
	prompt    string
	sectionID int64
	noteID    int64

	width int
}

// NewView creates a new rename prompt.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 120

	return &View{
		styles: s,
		input:  ti,
		width:  80,
	}
}

// Open seeds the prompt from a rename request.
func (v *View) Open(req messages.RenameRequested) {
	v.prompt = req.Prompt
	v.sectionID = req.SectionID
	v.noteID = req.NoteID
	v.input.SetValue(req.Initial)
	v.input.CursorEnd()
	v.input.Focus()
}

// Init initialises the prompt.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		submitted := messages.RenameSubmitted{
			SectionID: v.sectionID,
			NoteID:    v.noteID,
			Title:     v.input.Value(),
		}
		return v, func() tea.Msg { return submitted }
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the prompt.
func (v *View) View() string {
	label := v.styles.Subtitle.Render(v.prompt)
	hint := v.styles.Help.Render("enter confirm · esc cancel")
	return label + "\n\n" + v.styles.InputField.Render(v.input.View()) + "\n" + hint
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.width = width
	v.input.Width = min(width-8, 60)
}

// Value returns the current input text.
func (v *View) Value() string {
	return v.input.Value()
}
