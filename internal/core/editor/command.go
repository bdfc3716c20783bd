package editor

// Command is a single-shot edit replayed against every range in a
// region. Implementations receive the current text and one range, and
// return the edited text plus the range's refreshed boundaries.
type Command interface {
	apply(text []rune, r Range) ([]rune, Range)
}

// Insert types text at a range, replacing any selected text. Replaying
// a single typed character across every saved range is the common case.
type Insert struct {
	Text string
}

func (c Insert) apply(text []rune, r Range) ([]rune, Range) {
	ins := []rune(c.Text)
	out := make([]rune, 0, len(text)-(r.End-r.Start)+len(ins))
	out = append(out, text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, text[r.End:]...)

	caret := r.Start + len(ins)
	return out, Range{ID: r.ID, Start: caret, End: caret}
}

// DeleteBackward removes the selection, or the rune before a collapsed
// caret.
type DeleteBackward struct{}

func (c DeleteBackward) apply(text []rune, r Range) ([]rune, Range) {
	start, end := r.Start, r.End
	if r.collapsed() {
		if start == 0 {
			return text, r
		}
		start--
	}

	out := make([]rune, 0, len(text)-(end-start))
	out = append(out, text[:start]...)
	out = append(out, text[end:]...)
	return out, Range{ID: r.ID, Start: start, End: start}
}

// Wrap surrounds the range with a prefix and suffix, e.g. backticks for
// inline code. The range keeps covering the original text.
type Wrap struct {
	Prefix string
	Suffix string
}

func (c Wrap) apply(text []rune, r Range) ([]rune, Range) {
	pre, suf := []rune(c.Prefix), []rune(c.Suffix)

	out := make([]rune, 0, len(text)+len(pre)+len(suf))
	out = append(out, text[:r.Start]...)
	out = append(out, pre...)
	out = append(out, text[r.Start:r.End]...)
	out = append(out, suf...)
	out = append(out, text[r.End:]...)

	return out, Range{ID: r.ID, Start: r.Start + len(pre), End: r.End + len(pre)}
}

// InlineCode wraps the range in backticks.
func InlineCode() Command {
	return Wrap{Prefix: "`", Suffix: "`"}
}
