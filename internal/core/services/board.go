package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driven"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driving"
	"github.com/pinwall-labs/pinwall-cli/internal/logger"
)

// Ensure BoardService implements the interface.
var _ driving.BoardService = (*BoardService)(nil)

// DefaultSectionTitle names the section created for an empty store.
const DefaultSectionTitle = "Section 1"

// autoSaveDelay is how long after the last mutation the debounced
// autosave fires.
const autoSaveDelay = 800 * time.Millisecond

// BoardService owns the authoritative in-memory board and persists it
// wholesale through the key-value store. IDs for sections and notes are
// drawn from one monotonic allocator, so they are unique across the
// whole board and never collide, even after importing explicit IDs.
type BoardService struct {
	mu       sync.RWMutex
	store    driven.KeyValueStore
	sections []domain.Section
	nextID   int64
	activeID int64
	autoSave bool
	saver    *Debouncer
}

// NewBoardService creates a board service over the given store. The
// board starts empty; call Load to populate it.
func NewBoardService(store driven.KeyValueStore) *BoardService {
	s := &BoardService{
		store:    store,
		sections: []domain.Section{{ID: 1, Title: DefaultSectionTitle, Notes: []domain.Note{}}},
		nextID:   2,
		activeID: 1,
	}
	s.saver = NewDebouncer(autoSaveDelay, func() {
		if err := s.Save(context.Background()); err != nil {
			logger.Warn("autosave failed: %v", err)
		}
	})
	return s
}

// SetAutoSave enables or disables the debounced autosave.
func (s *BoardService) SetAutoSave(enabled bool) {
	s.mu.Lock()
	s.autoSave = enabled
	s.mu.Unlock()
	if !enabled {
		s.saver.Stop()
	}
}

// dirty schedules an autosave after a mutation. Caller must hold the
// lock.
func (s *BoardService) dirty() {
	if s.autoSave {
		s.saver.Trigger()
	}
}

// Sections returns a deep-copy snapshot of the section sequence.
func (s *BoardService) Sections() []domain.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSections(s.sections)
}

// Section returns a deep copy of one section.
func (s *BoardService) Section(id int64) (*domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.sectionIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("section %d: %w", id, domain.ErrNotFound)
	}
	sec := s.sections[idx].Clone()
	return &sec, nil
}

// FindNote locates a note anywhere on the board.
func (s *BoardService) FindNote(noteID int64) (*domain.Note, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sections {
		if j := s.sections[i].NoteIndex(noteID); j >= 0 {
			n := s.sections[i].Notes[j].Clone()
			return &n, s.sections[i].ID, nil
		}
	}
	return nil, 0, fmt.Errorf("note %d: %w", noteID, domain.ErrNotFound)
}

// CreateSection appends a new section with a fresh ID.
func (s *BoardService) CreateSection(title string) (*domain.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := domain.Section{ID: s.allocID(), Title: title, Notes: []domain.Note{}}
	s.sections = append(s.sections, sec)
	s.dirty()
	return &sec, nil
}

// CreateSectionWithID appends a section with an explicit ID, as used on
// import.
func (s *BoardService) CreateSectionWithID(id int64, title string) (*domain.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id <= 0 {
		return nil, fmt.Errorf("section id %d: %w", id, domain.ErrInvalidInput)
	}
	if s.idExists(id) {
		return nil, fmt.Errorf("section %d: %w", id, domain.ErrAlreadyExists)
	}
	s.bumpNextID(id)

	sec := domain.Section{ID: id, Title: title, Notes: []domain.Note{}}
	s.sections = append(s.sections, sec)
	s.dirty()
	return &sec, nil
}

// DeleteSection removes a section and all its notes. The last remaining
// section cannot be deleted.
func (s *BoardService) DeleteSection(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sectionIndex(id)
	if idx < 0 {
		return fmt.Errorf("section %d: %w", id, domain.ErrNotFound)
	}
	if len(s.sections) == 1 {
		return domain.ErrLastSection
	}

	s.sections = append(s.sections[:idx], s.sections[idx+1:]...)
	if s.activeID == id {
		s.activeID = s.sections[0].ID
	}
	s.dirty()
	return nil
}

// RenameSection updates a section title. Empty-after-trim titles leave
// the current title in place.
func (s *BoardService) RenameSection(id int64, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sectionIndex(id)
	if idx < 0 {
		return fmt.Errorf("section %d: %w", id, domain.ErrNotFound)
	}
	if !domain.ValidTitle(title) {
		return nil
	}
	s.sections[idx].Title = title
	s.dirty()
	return nil
}

// ReorderSection splices the section to targetIndex, preserving the
// relative order of all other sections.
func (s *BoardService) ReorderSection(id int64, targetIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sectionIndex(id)
	if idx < 0 {
		return fmt.Errorf("section %d: %w", id, domain.ErrNotFound)
	}
	if targetIndex < 0 || targetIndex >= len(s.sections) {
		return fmt.Errorf("target index %d: %w", targetIndex, domain.ErrInvalidInput)
	}

	sec := s.sections[idx]
	rest := append(s.sections[:idx:idx], s.sections[idx+1:]...)
	s.sections = append(rest[:targetIndex:targetIndex],
		append([]domain.Section{sec}, rest[targetIndex:]...)...)
	s.dirty()
	return nil
}

// CreateNote appends a note to a section, clamping geometry. A zero
// note ID means "assign a fresh one".
func (s *BoardService) CreateNote(sectionID int64, note domain.Note) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sectionIndex(sectionID)
	if idx < 0 {
		return nil, fmt.Errorf("section %d: %w", sectionID, domain.ErrNotFound)
	}

	if note.ID == 0 {
		note.ID = s.allocID()
	} else {
		if s.idExists(note.ID) {
			return nil, fmt.Errorf("note %d: %w", note.ID, domain.ErrAlreadyExists)
		}
		s.bumpNextID(note.ID)
	}

	note.ClampPosition()
	note.ClampSize()

	s.sections[idx].Notes = append(s.sections[idx].Notes, note)
	created := note.Clone()
	s.dirty()
	return &created, nil
}

// DeleteNote removes a note from its section.
func (s *BoardService) DeleteNote(sectionID, noteID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, j, err := s.locate(sectionID, noteID)
	if err != nil {
		return err
	}
	s.sections[i].Notes = append(s.sections[i].Notes[:j], s.sections[i].Notes[j+1:]...)
	s.dirty()
	return nil
}

// SetNoteTitle updates a note's title.
func (s *BoardService) SetNoteTitle(sectionID, noteID int64, title string) error {
	return s.updateNote(sectionID, noteID, func(n *domain.Note) {
		n.Title = title
	})
}

// SetNoteContent updates a note's content.
func (s *BoardService) SetNoteContent(sectionID, noteID int64, content string) error {
	return s.updateNote(sectionID, noteID, func(n *domain.Note) {
		n.Content = content
	})
}

// SetNoteStyle replaces a note's style map.
func (s *BoardService) SetNoteStyle(sectionID, noteID int64, style map[string]string) error {
	return s.updateNote(sectionID, noteID, func(n *domain.Note) {
		if style == nil {
			n.Style = nil
			return
		}
		n.Style = make(map[string]string, len(style))
		for k, v := range style {
			n.Style[k] = v
		}
	})
}

// PlaceNote moves a note within its section's canvas.
func (s *BoardService) PlaceNote(sectionID, noteID int64, x, y float64) error {
	return s.updateNote(sectionID, noteID, func(n *domain.Note) {
		n.X, n.Y = x, y
		n.ClampPosition()
	})
}

// ResizeNote resizes a note, clamping to the minimum dimensions.
func (s *BoardService) ResizeNote(sectionID, noteID int64, width, height float64) error {
	return s.updateNote(sectionID, noteID, func(n *domain.Note) {
		n.Width, n.Height = width, height
		n.ClampSize()
	})
}

// MoveNote transfers a note between sections as an atomic
// remove-then-append. All lookups happen before any mutation, so a
// failed call leaves the board unchanged.
func (s *BoardService) MoveNote(noteID, fromSectionID, toSectionID int64, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fromIdx, noteIdx, err := s.locate(fromSectionID, noteID)
	if err != nil {
		return err
	}
	toIdx := s.sectionIndex(toSectionID)
	if toIdx < 0 {
		return fmt.Errorf("section %d: %w", toSectionID, domain.ErrNotFound)
	}

	note := s.sections[fromIdx].Notes[noteIdx]
	note.X, note.Y = x, y
	note.ClampPosition()

	if fromIdx == toIdx {
		s.sections[fromIdx].Notes[noteIdx] = note
		s.dirty()
		return nil
	}

	s.sections[fromIdx].Notes = append(
		s.sections[fromIdx].Notes[:noteIdx],
		s.sections[fromIdx].Notes[noteIdx+1:]...)
	s.sections[toIdx].Notes = append(s.sections[toIdx].Notes, note)
	s.dirty()
	return nil
}

// ReorderNote splices a note to targetIndex within its section.
func (s *BoardService) ReorderNote(sectionID, noteID int64, targetIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, j, err := s.locate(sectionID, noteID)
	if err != nil {
		return err
	}
	notes := s.sections[i].Notes
	if targetIndex < 0 || targetIndex >= len(notes) {
		return fmt.Errorf("target index %d: %w", targetIndex, domain.ErrInvalidInput)
	}

	note := notes[j]
	rest := append(notes[:j:j], notes[j+1:]...)
	s.sections[i].Notes = append(rest[:targetIndex:targetIndex],
		append([]domain.Note{note}, rest[targetIndex:]...)...)
	s.dirty()
	return nil
}

// ActiveSection returns the ID of the currently selected section.
func (s *BoardService) ActiveSection() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// SetActiveSection selects a section.
func (s *BoardService) SetActiveSection(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sectionIndex(id) < 0 {
		return fmt.Errorf("section %d: %w", id, domain.ErrNotFound)
	}
	s.activeID = id
	return nil
}

// Load replaces the board wholesale from the store. Missing or empty
// stored data yields a single default section. The active selection
// survives when its section still exists, else it falls back to the
// first section.
func (s *BoardService) Load(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, driven.KeyBoard)
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	var sections []domain.Section
	if ok && raw != "" {
		sections, err = DecodeSections([]byte(raw))
		if err != nil {
			return fmt.Errorf("loading board: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(sections)
	logger.Debug("board loaded: %d sections", len(s.sections))
	return nil
}

// Save persists the board wholesale, as a bare section array.
func (s *BoardService) Save(ctx context.Context) error {
	s.mu.RLock()
	data, err := json.Marshal(s.sections)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}

	if err := s.store.Set(ctx, driven.KeyBoard, string(data)); err != nil {
		return fmt.Errorf("saving board: %w", err)
	}
	logger.Debug("board saved (%d bytes)", len(data))
	return nil
}

// Flush cancels any pending debounced autosave and saves now.
func (s *BoardService) Flush(ctx context.Context) error {
	s.saver.Stop()
	return s.Save(ctx)
}

// Replace swaps in a new section sequence, applying the same
// sanitisation as Load. Used by import.
func (s *BoardService) Replace(sections []domain.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(sections)
	s.dirty()
}

// replace installs sections, clamps geometry, reseeds the ID allocator
// and fixes up the active selection. Caller must hold the lock.
func (s *BoardService) replace(sections []domain.Section) {
	if len(sections) == 0 {
		sections = []domain.Section{{ID: 1, Title: DefaultSectionTitle, Notes: []domain.Note{}}}
	}
	for i := range sections {
		if sections[i].Notes == nil {
			sections[i].Notes = []domain.Note{}
		}
		for j := range sections[i].Notes {
			sections[i].Notes[j].ClampPosition()
			sections[i].Notes[j].ClampSize()
		}
	}

	s.sections = sections

	s.nextID = 1
	for i := range sections {
		s.bumpNextID(sections[i].ID)
		for j := range sections[i].Notes {
			s.bumpNextID(sections[i].Notes[j].ID)
		}
	}

	if s.sectionIndex(s.activeID) < 0 {
		s.activeID = s.sections[0].ID
	}
}

// updateNote applies a mutation to one note under the lock.
func (s *BoardService) updateNote(sectionID, noteID int64, fn func(*domain.Note)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, j, err := s.locate(sectionID, noteID)
	if err != nil {
		return err
	}
	fn(&s.sections[i].Notes[j])
	s.dirty()
	return nil
}

// locate resolves a section/note pair to indices. Caller must hold the
// lock.
func (s *BoardService) locate(sectionID, noteID int64) (int, int, error) {
	i := s.sectionIndex(sectionID)
	if i < 0 {
		return 0, 0, fmt.Errorf("section %d: %w", sectionID, domain.ErrNotFound)
	}
	j := s.sections[i].NoteIndex(noteID)
	if j < 0 {
		return 0, 0, fmt.Errorf("note %d: %w", noteID, domain.ErrNotFound)
	}
	return i, j, nil
}

// sectionIndex returns the index of a section ID, or -1. Caller must
// hold the lock.
func (s *BoardService) sectionIndex(id int64) int {
	for i := range s.sections {
		if s.sections[i].ID == id {
			return i
		}
	}
	return -1
}

// allocID hands out the next board-wide unique ID. Caller must hold the
// lock.
func (s *BoardService) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// bumpNextID advances the allocator past an explicitly assigned ID.
// Caller must hold the lock.
func (s *BoardService) bumpNextID(id int64) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// idExists reports whether any section or note already uses the ID.
// Caller must hold the lock.
func (s *BoardService) idExists(id int64) bool {
	for i := range s.sections {
		if s.sections[i].ID == id {
			return true
		}
		if s.sections[i].NoteIndex(id) >= 0 {
			return true
		}
	}
	return false
}

// cloneSections deep-copies a section sequence.
func cloneSections(sections []domain.Section) []domain.Section {
	out := make([]domain.Section, len(sections))
	for i, sec := range sections {
		out[i] = sec.Clone()
	}
	return out
}

// DecodeSections parses stored or imported board JSON. Both the bare
// section array and the legacy {"data":[...]} envelope are accepted;
// anything that is not an array after unwrapping is rejected.
func DecodeSections(data []byte) ([]domain.Section, error) {
	var sections []domain.Section
	if err := json.Unmarshal(data, &sections); err == nil {
		return sections, nil
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err != nil || env.Data == nil {
		return nil, domain.ErrMalformedImport
	}
	if err := json.Unmarshal(env.Data, &sections); err != nil {
		return nil, domain.ErrMalformedImport
	}
	return sections, nil
}
