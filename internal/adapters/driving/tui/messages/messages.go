// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBoard is the section tab bar plus the notes of the active section.
	ViewBoard ViewType = iota
	// ViewEditor is the note content editor.
	ViewEditor
	// ViewRename is the prompt for section and note titles.
	ViewRename
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBoard:
		return "board"
	case ViewEditor:
		return "editor"
	case ViewRename:
		return "rename"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// NoticeLevel classifies a transient status bar notice.
type NoticeLevel int

const (
	// NoticeInfo is a neutral confirmation.
	NoticeInfo NoticeLevel = iota
	// NoticeWarn is a user error; the action was rejected.
	NoticeWarn
	// NoticeError is a failed best-effort operation.
	NoticeError
)

// NoticePosted shows a transient message in the status bar.
type NoticePosted struct {
	Text  string
	Level NoticeLevel
}

// NoticeExpired dismisses the notice with the matching sequence number.
type NoticeExpired struct {
	Seq int
}

// EditNote opens the editor for a note.
type EditNote struct {
	SectionID int64
	NoteID    int64
}

// NoteSaved signals the editor committed its content.
type NoteSaved struct {
	SectionID int64
	NoteID    int64
	Err       error
}

// RenameRequested opens the rename prompt.
type RenameRequested struct {
	// Prompt is the label shown above the input.
	Prompt string
	// Initial seeds the input with the current title.
	Initial string
	// SectionID identifies the section being renamed, or the owner of
	// the note when NoteID is set.
	SectionID int64
	// NoteID is zero for section renames.
	NoteID int64
}

// RenameSubmitted carries the new title back from the prompt.
type RenameSubmitted struct {
	SectionID int64
	NoteID    int64
	Title     string
}

// StoreChanged signals that another process wrote the board store.
type StoreChanged struct{}

// BoardReloaded signals the board was re-read from the store.
type BoardReloaded struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
