// Package editor implements multi-cursor emulation for one rich-text
// region. A set of saved selection ranges is maintained alongside the
// live cursor; every single-shot command is replayed against each saved
// range, so one keystroke edits all of them at once.
package editor

import (
	"github.com/google/uuid"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

// Range is a selection inside the region, in rune offsets. Start <= End;
// a collapsed range (Start == End) is a caret.
type Range struct {
	// ID identifies a saved range across replays.
	ID string

	// Start and End are rune offsets into the region text.
	Start int
	End   int
}

// collapsed reports whether the range is a bare caret.
func (r Range) collapsed() bool { return r.Start == r.End }

// Region is one editable text region with a live cursor and zero or
// more saved ranges. All mutation goes through Apply so the saved
// ranges stay positioned correctly.
type Region struct {
	text  []rune
	live  Range
	saved []Range

	// snapshot taken before the first replay of the last command, so
	// Undo restores text and ranges atomically.
	snapText  []rune
	snapLive  Range
	snapSaved []Range
	hasSnap   bool
}

// NewRegion creates a region over the given text with the caret at the
// start and no saved ranges.
func NewRegion(text string) *Region {
	return &Region{text: []rune(text)}
}

// Text returns the region content.
func (g *Region) Text() string { return string(g.text) }

// Live returns the live cursor range.
func (g *Region) Live() Range { return g.live }

// SetLive positions the live cursor. Offsets are clamped and normalised.
func (g *Region) SetLive(start, end int) {
	g.live = g.normalise(Range{Start: start, End: end})
}

// Ranges returns a copy of the saved ranges.
func (g *Region) Ranges() []Range {
	return append([]Range(nil), g.saved...)
}

// AddRange saves a selection range for replay. Offsets are clamped and
// normalised; a range identical to an already-saved one is rejected.
func (g *Region) AddRange(start, end int) (Range, error) {
	r := g.normalise(Range{ID: uuid.New().String(), Start: start, End: end})
	for _, s := range g.saved {
		if s.Start == r.Start && s.End == r.End {
			return Range{}, domain.ErrAlreadyExists
		}
	}
	g.saved = append(g.saved, r)
	return r, nil
}

// ClearRanges drops all saved ranges.
func (g *Region) ClearRanges() { g.saved = nil }

// Apply replays one command against the live cursor and every saved
// range. Replay runs in descending start order, so disjoint ranges are
// replayed order-independently; after each replay the remaining range
// boundaries are refreshed by the edit's length delta.
func (g *Region) Apply(cmd Command) {
	g.takeSnapshot()

	targets := make([]*Range, 0, len(g.saved)+1)
	targets = append(targets, &g.live)
	for i := range g.saved {
		targets = append(targets, &g.saved[i])
	}

	// Descending start order: edits above never move text below.
	for i := 0; i < len(targets); i++ {
		for j := i + 1; j < len(targets); j++ {
			if targets[j].Start > targets[i].Start {
				targets[i], targets[j] = targets[j], targets[i]
			}
		}
	}

	var processed []*Range
	for _, tgt := range targets {
		before := len(g.text)
		newText, newRange := cmd.apply(g.text, *tgt)
		delta := len(newText) - before

		g.text = newText
		*tgt = newRange

		// Earlier replays sit at higher offsets; shift them by the
		// length change this edit introduced below them.
		for _, p := range processed {
			p.Start += delta
			p.End += delta
		}
		processed = append(processed, tgt)
	}

	g.live = g.normalise(g.live)
	for i := range g.saved {
		g.saved[i] = g.normalise(g.saved[i])
	}
}

// Undo restores the region to its state before the last command.
// Returns false when there is nothing to undo.
func (g *Region) Undo() bool {
	if !g.hasSnap {
		return false
	}
	g.text = g.snapText
	g.live = g.snapLive
	g.saved = g.snapSaved
	g.hasSnap = false
	return true
}

// takeSnapshot records text and ranges before a command runs.
func (g *Region) takeSnapshot() {
	g.snapText = append([]rune(nil), g.text...)
	g.snapLive = g.live
	g.snapSaved = append([]Range(nil), g.saved...)
	g.hasSnap = true
}

// normalise clamps a range to the text bounds and orders its ends.
func (g *Region) normalise(r Range) Range {
	n := len(g.text)
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End < 0 {
		r.End = 0
	}
	if r.Start > n {
		r.Start = n
	}
	if r.End > n {
		r.End = n
	}
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	return r
}
