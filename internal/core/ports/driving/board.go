package driving

import (
	"context"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

// BoardService owns the authoritative in-memory board: the ordered
// section sequence and every note in it. The presentation layer is a
// projection; all edits flow through these calls, never the reverse.
//
// Mutations are synchronous and in-memory. Persistence happens through
// Load/Save and, when autosave is enabled, a debounced save scheduled
// after each mutation.
type BoardService interface {
	// Sections returns a deep-copy snapshot of the section sequence.
	Sections() []domain.Section

	// Section returns a deep copy of one section.
	Section(id int64) (*domain.Section, error)

	// FindNote locates a note anywhere on the board. Returns the note
	// and the owning section's ID.
	FindNote(noteID int64) (*domain.Note, int64, error)

	// CreateSection appends a new section with a fresh ID.
	CreateSection(title string) (*domain.Section, error)

	// CreateSectionWithID appends a section with an explicit ID, as
	// used on import. Fails with domain.ErrAlreadyExists on collision.
	CreateSectionWithID(id int64, title string) (*domain.Section, error)

	// DeleteSection removes a section and all its notes. Deleting the
	// last remaining section fails with domain.ErrLastSection.
	DeleteSection(id int64) error

	// RenameSection updates a section title. A title that is empty
	// after trimming leaves the current title in place.
	RenameSection(id int64, title string) error

	// ReorderSection splices the section to targetIndex, preserving the
	// relative order of all other sections.
	ReorderSection(id int64, targetIndex int) error

	// CreateNote appends a note to a section. A zero note ID means
	// "assign a fresh one"; zero size means the defaults. Geometry is
	// clamped on placement.
	CreateNote(sectionID int64, note domain.Note) (*domain.Note, error)

	// DeleteNote removes a note from its section.
	DeleteNote(sectionID, noteID int64) error

	// SetNoteTitle updates a note's title.
	SetNoteTitle(sectionID, noteID int64, title string) error

	// SetNoteContent updates a note's content.
	SetNoteContent(sectionID, noteID int64, content string) error

	// SetNoteStyle replaces a note's style map.
	SetNoteStyle(sectionID, noteID int64, style map[string]string) error

	// PlaceNote moves a note within its section's canvas. The position
	// is clamped to >= 0.
	PlaceNote(sectionID, noteID int64, x, y float64) error

	// ResizeNote resizes a note, clamping to the minimum dimensions.
	ResizeNote(sectionID, noteID int64, width, height float64) error

	// MoveNote transfers a note between sections atomically: after the
	// call the note exists only in the destination, at the clamped
	// position. On any failure the board is unchanged.
	MoveNote(noteID, fromSectionID, toSectionID int64, x, y float64) error

	// ReorderNote splices a note to targetIndex within its section.
	ReorderNote(sectionID, noteID int64, targetIndex int) error

	// ActiveSection returns the ID of the currently selected section.
	ActiveSection() int64

	// SetActiveSection selects a section. Unknown IDs are rejected.
	SetActiveSection(id int64) error

	// Load replaces the board wholesale from the store. A missing or
	// empty store yields a single default section. The active selection
	// is kept when its section survives the load, else the first
	// section is selected.
	Load(ctx context.Context) error

	// Save persists the board wholesale to the store.
	Save(ctx context.Context) error

	// Flush cancels any pending debounced autosave and saves now.
	Flush(ctx context.Context) error
}
