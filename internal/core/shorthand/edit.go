package shorthand

import "strings"

// Cursor addresses a position inside a block sequence: a block index, an
// item index (or paragraph line index), and a rune offset into that
// item's text.
type Cursor struct {
	Block  int
	Item   int
	Offset int
}

// valid reports whether the cursor addresses an existing list item.
func (c Cursor) valid(blocks []Block) bool {
	if c.Block < 0 || c.Block >= len(blocks) {
		return false
	}
	b := blocks[c.Block]
	return b.Kind != ListNone && c.Item >= 0 && c.Item < len(b.Items)
}

// SplitItem handles a line break pressed inside a structural item.
//
// On a non-empty item the item is split at the cursor: text before the
// offset stays, trailing text moves into a new sibling item of the same
// kind, and the cursor lands at the start of the new item.
//
// On an empty item the press exits the structure instead: the empty item
// is removed, a plain editable line is left after the (possibly
// now-empty-and-removed) list, and the cursor lands on that line.
func SplitItem(blocks []Block, cur Cursor) ([]Block, Cursor) {
	if !cur.valid(blocks) {
		return blocks, cur
	}

	out := cloneBlocks(blocks)
	b := &out[cur.Block]
	item := b.Items[cur.Item]

	if strings.TrimSpace(item.Text) == "" {
		return exitStructure(out, cur)
	}

	offset := cur.Offset
	runes := []rune(item.Text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	head, tail := string(runes[:offset]), string(runes[offset:])
	b.Items[cur.Item].Text = head
	b.Items = append(b.Items[:cur.Item+1],
		append([]Item{{Text: tail}}, b.Items[cur.Item+1:]...)...)

	return out, Cursor{Block: cur.Block, Item: cur.Item + 1, Offset: 0}
}

// BackspaceAtStart handles delete-backward at the very start of a
// structural item. An empty item is removed and replaced by a plain
// line; handled is true and the cursor lands on that line. A non-empty
// item is left for normal deletion; handled is false and the caller
// should run Prune as a deferred re-check once the edit lands.
func BackspaceAtStart(blocks []Block, cur Cursor) (out []Block, c Cursor, handled bool) {
	if !cur.valid(blocks) {
		return blocks, cur, false
	}
	if strings.TrimSpace(blocks[cur.Block].Items[cur.Item].Text) != "" {
		return blocks, cur, false
	}
	out, c = exitStructure(cloneBlocks(blocks), cur)
	return out, c, true
}

// exitStructure removes the item under the cursor and leaves a plain
// empty line in its place, splitting the list when the item sits in the
// middle. Lists emptied by the removal are dropped.
func exitStructure(blocks []Block, cur Cursor) ([]Block, Cursor) {
	b := blocks[cur.Block]
	before := append([]Item(nil), b.Items[:cur.Item]...)
	after := append([]Item(nil), b.Items[cur.Item+1:]...)

	var repl []Block
	if len(before) > 0 {
		repl = append(repl, Block{Kind: b.Kind, Items: before})
	}
	plainIdx := cur.Block + len(repl)
	repl = append(repl, Block{Kind: ListNone, Lines: []string{""}})
	if len(after) > 0 {
		repl = append(repl, Block{Kind: b.Kind, Items: after})
	}

	out := append([]Block(nil), blocks[:cur.Block]...)
	out = append(out, repl...)
	out = append(out, blocks[cur.Block+1:]...)

	return out, Cursor{Block: plainIdx, Item: 0, Offset: 0}
}

// CursorForLine maps a zero-based line index in source text to the
// block/item cursor Parse assigns that line. Paragraph lines and
// marker-only lines carry no item, so ok is false for those.
func CursorForLine(text string, line int) (Cursor, bool) {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return Cursor{}, false
	}

	// Walk the lines with the same coalescing Parse applies, counting
	// blocks and items as they would land in its output.
	var (
		block    = -1
		openKind ListKind
		open     bool
		item     int
	)
	for i := 0; i <= line; i++ {
		if bareMarker(lines[i]) {
			if i == line {
				return Cursor{}, false
			}
			continue
		}
		kind, _ := classify(lines[i])
		if kind == ListNone {
			if !open || openKind != ListNone {
				block++
				open, openKind = true, ListNone
			}
			if i == line {
				return Cursor{}, false
			}
			continue
		}
		if !open || openKind != kind {
			block++
			open, openKind, item = true, kind, 0
		} else {
			item++
		}
		if i == line {
			return Cursor{Block: block, Item: item}, true
		}
	}
	return Cursor{}, false
}

// ToggleCheckbox flips the checked state of a checkbox item.
func ToggleCheckbox(blocks []Block, cur Cursor) []Block {
	if !cur.valid(blocks) || blocks[cur.Block].Kind != ListCheckbox {
		return blocks
	}
	out := cloneBlocks(blocks)
	out[cur.Block].Items[cur.Item].Checked = !out[cur.Block].Items[cur.Item].Checked
	return out
}

// cloneBlocks deep-copies a block sequence so edits never alias the
// caller's slices.
func cloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b
		out[i].Items = append([]Item(nil), b.Items...)
		out[i].Lines = append([]string(nil), b.Lines...)
	}
	return out
}
