package domain

import "strings"

// Geometry limits for notes, in canvas pixels.
const (
	// MinNoteWidth is the smallest width a note can be resized to.
	MinNoteWidth = 130.0

	// MinNoteHeight is the smallest height a note can be resized to.
	MinNoteHeight = 85.0

	// DefaultNoteWidth is the width assigned when a note is created
	// without explicit geometry.
	DefaultNoteWidth = 230.0

	// DefaultNoteHeight is the height assigned when a note is created
	// without explicit geometry.
	DefaultNoteHeight = 230.0
)

// Section is a named tab-like grouping that owns an ordered collection
// of notes. Note order is significant: it determines overview listing
// and reorder semantics.
type Section struct {
	// ID is the unique identifier for the section, unique across the
	// whole board.
	ID int64 `json:"id"`

	// Title is the display name, mutable via rename.
	Title string `json:"title"`

	// Notes is the ordered note sequence owned by this section.
	Notes []Note `json:"notes"`
}

// Note is a positionable, resizable rich-text card belonging to exactly
// one section.
type Note struct {
	// ID is unique across the whole board, not just the owning section.
	ID int64 `json:"id"`

	// Title is the note heading. May embed inline markup.
	Title string `json:"title"`

	// Content is the note body. May contain shorthand-expanded
	// structural markup (lists, checkboxes, inline code).
	Content string `json:"content"`

	// X and Y are position offsets within the owning section's canvas.
	// Always >= 0.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Width and Height are the note dimensions, clamped to the minimums.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Style is an open map of presentation attributes applied to the
	// content region (e.g. text colour).
	Style map[string]string `json:"style"`
}

// ClampPosition forces the note position to be non-negative.
func (n *Note) ClampPosition() {
	if n.X < 0 {
		n.X = 0
	}
	if n.Y < 0 {
		n.Y = 0
	}
}

// ClampSize forces the note dimensions to the minimums. A zero size is
// treated as "unset" and replaced with the defaults.
func (n *Note) ClampSize() {
	if n.Width == 0 {
		n.Width = DefaultNoteWidth
	}
	if n.Height == 0 {
		n.Height = DefaultNoteHeight
	}
	if n.Width < MinNoteWidth {
		n.Width = MinNoteWidth
	}
	if n.Height < MinNoteHeight {
		n.Height = MinNoteHeight
	}
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	c := n
	if n.Style != nil {
		c.Style = make(map[string]string, len(n.Style))
		for k, v := range n.Style {
			c.Style[k] = v
		}
	}
	return c
}

// Clone returns a deep copy of the section and its notes.
func (s Section) Clone() Section {
	c := s
	c.Notes = make([]Note, len(s.Notes))
	for i, n := range s.Notes {
		c.Notes[i] = n.Clone()
	}
	return c
}

// NoteIndex returns the position of the note with the given ID in the
// section's note sequence, or -1 if the section does not own it.
func (s *Section) NoteIndex(noteID int64) int {
	for i := range s.Notes {
		if s.Notes[i].ID == noteID {
			return i
		}
	}
	return -1
}

// ValidTitle reports whether a rename title is usable: non-empty after
// trimming. Renames with unusable titles are no-ops.
func ValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}
