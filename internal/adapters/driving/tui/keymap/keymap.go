// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// NextSection selects the next section tab.
	NextSection key.Binding

	// PrevSection selects the previous section tab.
	PrevSection key.Binding

	// Up navigates up in the notes list.
	Up key.Binding

	// Down navigates down in the notes list.
	Down key.Binding

	// Edit opens the selected note in the editor.
	Edit key.Binding

	// NewNote creates a note in the active section.
	NewNote key.Binding

	// DeleteNote removes the selected note.
	DeleteNote key.Binding

	// NewSection creates a section.
	NewSection key.Binding

	// RenameSection renames the active section.
	RenameSection key.Binding

	// DeleteSection removes the active section.
	DeleteSection key.Binding

	// Save commits the editor content.
	Save key.Binding

	// ToggleCheck flips the checkbox item under the editor cursor.
	ToggleCheck key.Binding

	// MarkCursor saves an extra cursor position in the editor.
	MarkCursor key.Binding

	// WrapCode wraps every saved cursor selection in backticks.
	WrapCode key.Binding

	// UndoEdit reverts the last multi-cursor command.
	UndoEdit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit note"),
		),
		NewNote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		DeleteNote: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete note"),
		),
		NewSection: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new section"),
		),
		RenameSection: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename section"),
		),
		DeleteSection: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete section"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		ToggleCheck: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle checkbox"),
		),
		MarkCursor: key.NewBinding(
			key.WithKeys("ctrl+@"),
			key.WithHelp("ctrl+space", "mark cursor"),
		),
		WrapCode: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "wrap in backticks"),
		),
		UndoEdit: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// BoardHelp returns keybindings for the board view.
func (k *KeyMap) BoardHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.NewNote, k.Edit, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.Up, k.Down},
		{k.NewNote, k.Edit, k.DeleteNote},
		{k.NewSection, k.RenameSection, k.DeleteSection},
		{k.Save, k.ToggleCheck, k.MarkCursor, k.WrapCode, k.UndoEdit},
		{k.Help, k.Back, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
