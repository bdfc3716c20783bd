// Package board provides the main board view: the section tab bar and
// the notes of the active section.
package board

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/keymap"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/messages"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/styles"
	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driving"
	"github.com/pinwall-labs/pinwall-cli/internal/core/shorthand"
)

// View renders the sections and the notes of the active one.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	board  driving.BoardService

	sections []domain.Section
	active   int64
	selected int

	width  int
	height int
	ready  bool
}

// NewView creates a new board view.
func NewView(s *styles.Styles, km *keymap.KeyMap, board driving.BoardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		board:  board,
		width:  80,
		height: 24,
	}
}

// Init initialises the board view.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh re-reads the board state. The selected row is clamped so the
// cursor never points past the end after a delete or reload.
func (v *View) Refresh() {
	v.sections = v.board.Sections()
	v.active = v.board.ActiveSection()
	if sec := v.activeSection(); sec != nil && v.selected >= len(sec.Notes) {
		v.selected = len(sec.Notes) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// activeSection returns the active section from the last refresh.
func (v *View) activeSection() *domain.Section {
	for i := range v.sections {
		if v.sections[i].ID == v.active {
			return &v.sections[i]
		}
	}
	if len(v.sections) > 0 {
		return &v.sections[0]
	}
	return nil
}

// SelectedNote returns the note under the cursor, or nil.
func (v *View) SelectedNote() *domain.Note {
	sec := v.activeSection()
	if sec == nil || v.selected >= len(sec.Notes) {
		return nil
	}
	return &sec.Notes[v.selected]
}

// Update handles messages for the board view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.NextSection):
		v.shiftSection(1)
		return v, nil

	case keymap.Matches(k, v.keymap.PrevSection):
		v.shiftSection(-1)
		return v, nil

	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case keymap.Matches(k, v.keymap.Down):
		if sec := v.activeSection(); sec != nil && v.selected < len(sec.Notes)-1 {
			v.selected++
		}
		return v, nil

	case keymap.Matches(k, v.keymap.Edit):
		note := v.SelectedNote()
		if note == nil {
			return v, nil
		}
		sectionID := v.active
		noteID := note.ID
		return v, func() tea.Msg {
			return messages.EditNote{SectionID: sectionID, NoteID: noteID}
		}

	case keymap.Matches(k, v.keymap.NewNote):
		return v.createNote()

	case keymap.Matches(k, v.keymap.DeleteNote):
		return v.deleteNote()

	case keymap.Matches(k, v.keymap.NewSection):
		return v.createSection()

	case keymap.Matches(k, v.keymap.RenameSection):
		sec := v.activeSection()
		if sec == nil {
			return v, nil
		}
		req := messages.RenameRequested{
			Prompt:    "Rename section",
			Initial:   sec.Title,
			SectionID: sec.ID,
		}
		return v, func() tea.Msg { return req }

	case keymap.Matches(k, v.keymap.DeleteSection):
		return v.deleteSection()
	}

	return v, nil
}

// shiftSection moves the active tab by delta, wrapping around.
func (v *View) shiftSection(delta int) {
	if len(v.sections) == 0 {
		return
	}
	idx := 0
	for i := range v.sections {
		if v.sections[i].ID == v.active {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(v.sections)) % len(v.sections)
	if err := v.board.SetActiveSection(v.sections[idx].ID); err == nil {
		v.active = v.sections[idx].ID
		v.selected = 0
	}
}

func (v *View) createNote() (*View, tea.Cmd) {
	note, err := v.board.CreateNote(v.active, domain.Note{Title: "New note"})
	if err != nil {
		return v, notice(fmt.Sprintf("could not add note: %v", err), messages.NoticeError)
	}
	v.Refresh()
	sectionID := v.active
	noteID := note.ID
	return v, func() tea.Msg {
		return messages.EditNote{SectionID: sectionID, NoteID: noteID}
	}
}

func (v *View) deleteNote() (*View, tea.Cmd) {
	note := v.SelectedNote()
	if note == nil {
		return v, nil
	}
	if err := v.board.DeleteNote(v.active, note.ID); err != nil {
		return v, notice(fmt.Sprintf("could not delete note: %v", err), messages.NoticeError)
	}
	v.Refresh()
	return v, notice("note deleted", messages.NoticeInfo)
}

func (v *View) createSection() (*View, tea.Cmd) {
	sec, err := v.board.CreateSection(fmt.Sprintf("Section %d", len(v.sections)+1))
	if err != nil {
		return v, notice(fmt.Sprintf("could not add section: %v", err), messages.NoticeError)
	}
	_ = v.board.SetActiveSection(sec.ID)
	v.Refresh()
	req := messages.RenameRequested{
		Prompt:    "Name the new section",
		Initial:   sec.Title,
		SectionID: sec.ID,
	}
	return v, func() tea.Msg { return req }
}

func (v *View) deleteSection() (*View, tea.Cmd) {
	if err := v.board.DeleteSection(v.active); err != nil {
		if errors.Is(err, domain.ErrLastSection) {
			return v, notice("the last section cannot be deleted", messages.NoticeWarn)
		}
		return v, notice(fmt.Sprintf("could not delete section: %v", err), messages.NoticeError)
	}
	v.Refresh()
	return v, notice("section deleted", messages.NoticeInfo)
}

// notice wraps a NoticePosted message in a command.
func notice(text string, level messages.NoticeLevel) tea.Cmd {
	return func() tea.Msg {
		return messages.NoticePosted{Text: text, Level: level}
	}
}

// View renders the board.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	sec := v.activeSection()
	if sec == nil || len(sec.Notes) == 0 {
		b.WriteString(v.styles.Muted.Render("No notes yet. Press n to add one."))
		return b.String()
	}

	for i := range sec.Notes {
		b.WriteString(v.renderNote(&sec.Notes[i], i == v.selected))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTabs renders the section tab bar.
func (v *View) renderTabs() string {
	tabs := make([]string, 0, len(v.sections))
	for i := range v.sections {
		style := v.styles.TabInactive
		if v.sections[i].ID == v.active {
			style = v.styles.TabActive
		}
		tabs = append(tabs, style.Render(v.sections[i].Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderNote renders one note card with a shorthand-rendered preview.
func (v *View) renderNote(n *domain.Note, selected bool) string {
	title := v.styles.Subtitle.Render(n.Title)
	if selected {
		title = v.styles.Selected.Render(n.Title)
	}

	body := shorthand.RenderText(shorthand.Parse(n.Content))
	if body == "" {
		body = v.styles.Muted.Render("(empty)")
	}

	card := title + "\n" + body
	return v.styles.Note.Width(min(v.width-4, 60)).Render(card)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the cursor row, for the app's status bar.
func (v *View) Selected() int {
	return v.selected
}

// ActiveTitle returns the active section title and note count.
func (v *View) ActiveTitle() (string, int) {
	sec := v.activeSection()
	if sec == nil {
		return "", 0
	}
	return sec.Title, len(sec.Notes)
}
