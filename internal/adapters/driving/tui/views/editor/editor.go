// Package editor provides the note content editor view. It runs the
// list shorthand normaliser on save and supports multi-cursor edits
// over saved cursor positions.
package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/keymap"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/messages"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/styles"
	"github.com/pinwall-labs/pinwall-cli/internal/core/editor"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driving"
	"github.com/pinwall-labs/pinwall-cli/internal/core/shorthand"
)

// View edits one note's content.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	board  driving.BoardService

	textarea  textarea.Model
	sectionID int64
	noteID    int64
	title     string

	// region carries the saved cursor positions for multi-cursor
	// commands. Rebuilt whenever the text changes by other means.
	region *editor.Region
	marks  int

	width  int
	height int
}

// NewView creates a new editor view.
func NewView(s *styles.Styles, km *keymap.KeyMap, board driving.BoardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "Write your note. Start lines with *, 1. or > for lists."
	ta.ShowLineNumbers = false

	return &View{
		styles:   s,
		keymap:   km,
		board:    board,
		textarea: ta,
		width:    80,
		height:   24,
	}
}

// Open loads a note into the editor.
func (v *View) Open(sectionID, noteID int64) error {
	note, _, err := v.board.FindNote(noteID)
	if err != nil {
		return err
	}

	v.sectionID = sectionID
	v.noteID = noteID
	v.title = note.Title
	v.textarea.SetValue(note.Content)
	v.textarea.Focus()
	v.region = nil
	v.marks = 0
	return nil
}

// Init initialises the editor view.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Save):
			return v, v.save()

		case keymap.Matches(k, v.keymap.ToggleCheck):
			v.toggleCheckbox()
			return v, nil

		case keymap.Matches(k, v.keymap.MarkCursor):
			v.markCursor()
			return v, nil

		case keymap.Matches(k, v.keymap.WrapCode):
			v.applyCommand(editor.InlineCode())
			return v, nil

		case keymap.Matches(k, v.keymap.UndoEdit):
			if v.region != nil && v.region.Undo() {
				v.textarea.SetValue(v.region.Text())
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	before := v.textarea.Value()
	v.textarea, cmd = v.textarea.Update(msg)
	if v.textarea.Value() != before {
		// Typing invalidates the saved cursor positions.
		v.region = nil
		v.marks = 0
	}
	return v, cmd
}

// cursorOffset converts the textarea cursor into a rune offset.
func (v *View) cursorOffset() int {
	row := v.textarea.Line()
	col := v.textarea.LineInfo().ColumnOffset

	offset := 0
	lines := 0
	for _, r := range v.textarea.Value() {
		if lines == row {
			break
		}
		offset++
		if r == '\n' {
			lines++
		}
	}
	return offset + col
}

// markCursor records the current cursor as an extra edit position.
func (v *View) markCursor() {
	if v.region == nil {
		v.region = editor.NewRegion(v.textarea.Value())
	}
	at := v.cursorOffset()
	if _, err := v.region.AddRange(at, at); err == nil {
		v.marks++
	}
}

// applyCommand runs a multi-cursor command over the live cursor and all
// marked positions.
func (v *View) applyCommand(cmd editor.Command) {
	if v.region == nil {
		v.region = editor.NewRegion(v.textarea.Value())
	}
	at := v.cursorOffset()
	v.region.SetLive(at, at)
	v.region.Apply(cmd)
	v.textarea.SetValue(v.region.Text())
}

// toggleCheckbox flips the checkbox item on the cursor's line and
// rewrites the text in source form, so the checked marker is part of
// the content that gets saved. Non-checkbox lines are left alone.
func (v *View) toggleCheckbox() {
	value := v.textarea.Value()
	cur, ok := shorthand.CursorForLine(value, v.textarea.Line())
	if !ok {
		return
	}

	blocks := shorthand.Parse(value)
	if blocks[cur.Block].Kind != shorthand.ListCheckbox {
		return
	}
	v.textarea.SetValue(shorthand.Source(shorthand.ToggleCheckbox(blocks, cur)))
	v.region = nil
	v.marks = 0
}

// save normalises the content through the shorthand processor and
// commits it to the board.
func (v *View) save() tea.Cmd {
	blocks := shorthand.Prune(shorthand.Parse(v.textarea.Value()))
	content := shorthand.Source(blocks)
	v.textarea.SetValue(content)

	err := v.board.SetNoteContent(v.sectionID, v.noteID, content)
	saved := messages.NoteSaved{SectionID: v.sectionID, NoteID: v.noteID, Err: err}
	return func() tea.Msg { return saved }
}

// View renders the editor.
func (v *View) View() string {
	header := v.styles.Title.Render(v.title)
	if v.marks > 0 {
		header += "  " + v.styles.Muted.Render(fmt.Sprintf("%d cursors", v.marks+1))
	}

	footer := v.styles.Help.Render("ctrl+s save · ctrl+t toggle checkbox · ctrl+space mark cursor · ctrl+b wrap · esc back")

	return header + "\n\n" + v.styles.InputField.Render(v.textarea.View()) + "\n" + footer
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.textarea.SetWidth(min(width-6, 100))
	v.textarea.SetHeight(max(height-8, 5))
}

// Marks returns the number of extra saved cursors.
func (v *View) Marks() int {
	return v.marks
}

// Value returns the editor content.
func (v *View) Value() string {
	return v.textarea.Value()
}

// NoteID returns the note being edited.
func (v *View) NoteID() int64 {
	return v.noteID
}
