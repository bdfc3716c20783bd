// Package shorthand converts line-prefix text patterns into structural
// list and checkbox blocks. It is the processor behind note content
// editing: freeform text goes in, a block sequence comes out, and the
// block sequence renders back to markup or display text.
package shorthand

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// ListKind identifies the structural variant a line expands into.
type ListKind int

const (
	// ListNone marks a paragraph block (plain text, line breaks kept).
	ListNone ListKind = iota

	// ListBullet is an unordered list ("* text").
	ListBullet

	// ListNumbered is an ordered list ("1. text").
	ListNumbered

	// ListCheckbox is a checkbox list ("> text", "> [x] text" when
	// checked).
	ListCheckbox
)

// String returns the string representation of the list kind.
func (k ListKind) String() string {
	switch k {
	case ListNone:
		return "paragraph"
	case ListBullet:
		return "bullet"
	case ListNumbered:
		return "numbered"
	case ListCheckbox:
		return "checkbox"
	default:
		return "unknown"
	}
}

// Item is a single entry in a list block.
type Item struct {
	// Text is the item's visible text, unescaped.
	Text string

	// Checked is the toggle state for checkbox items.
	Checked bool
}

// Block is one structural unit of processed content: either a list of a
// given kind, or a paragraph of plain lines.
type Block struct {
	// Kind is ListNone for paragraphs.
	Kind ListKind

	// Items holds the list entries. Empty for paragraphs.
	Items []Item

	// Lines holds the paragraph lines verbatim. Empty for lists.
	Lines []string
}

// checkedMark flags a checked checkbox item in source form: "> [x] text".
const checkedMark = "[x] "

// uncheckedMark is the explicit unchecked form. Accepted on parse,
// never emitted; "> text" is the canonical unchecked source.
const uncheckedMark = "[ ] "

// numberedPrefix matches "<digits>. " at the start of a trimmed line.
var numberedPrefix = regexp.MustCompile(`^(\d+)\. (.*)$`)

// bareNumbered matches a numbered marker with nothing after it.
var bareNumbered = regexp.MustCompile(`^\d+\.$`)

// lineRule maps a recognised prefix to its structural variant. Rules are
// evaluated top to bottom; the first match wins.
type lineRule struct {
	kind  ListKind
	match func(trimmed string) (text string, ok bool)
}

var rules = []lineRule{
	{ListBullet, func(s string) (string, bool) {
		return strings.TrimPrefix(s, "* "), strings.HasPrefix(s, "* ")
	}},
	{ListNumbered, func(s string) (string, bool) {
		m := numberedPrefix.FindStringSubmatch(s)
		if m == nil {
			return "", false
		}
		return m[2], true
	}},
	{ListCheckbox, func(s string) (string, bool) {
		return strings.TrimPrefix(s, "> "), strings.HasPrefix(s, "> ")
	}},
}

// Classify matches one line against the rule table. It returns the
// structural kind and the text after the prefix. Lines that match no
// rule, and lines whose prefix has no text after it, classify as
// ListNone.
func Classify(line string) (ListKind, string) {
	kind, item := classify(line)
	return kind, item.Text
}

// classify is Classify plus the checked state: checkbox lines carry an
// optional "[x] " or "[ ] " marker between the prefix and the text.
func classify(line string) (ListKind, Item) {
	trimmed := strings.TrimSpace(line)
	for _, r := range rules {
		text, ok := r.match(trimmed)
		if !ok {
			continue
		}
		if strings.TrimSpace(text) == "" {
			// Prefix with no text produces no item.
			return ListNone, Item{Text: line}
		}
		item := Item{Text: text}
		if r.kind == ListCheckbox {
			if rest, found := strings.CutPrefix(text, checkedMark); found {
				item = Item{Text: rest, Checked: true}
			} else if rest, found := strings.CutPrefix(text, uncheckedMark); found {
				item = Item{Text: rest}
			}
		}
		return r.kind, item
	}
	return ListNone, Item{Text: line}
}

// bareMarker reports whether the text is a list marker with nothing
// behind it: a bare "*", a bare numeral+dot, or a bare ">".
func bareMarker(text string) bool {
	t := strings.TrimSpace(text)
	return t == "*" || t == ">" || bareNumbered.MatchString(t)
}

// Parse converts freeform text into a block sequence. Consecutive lines
// of the same recognised kind coalesce into one list; a kind change or a
// plain line closes the open list. Marker-only lines produce nothing.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}

	var (
		blocks []Block
		open   *Block // open list being coalesced, nil when none
		para   *Block // open paragraph, nil when none
	)

	closeList := func() {
		if open != nil {
			blocks = append(blocks, *open)
			open = nil
		}
	}
	closePara := func() {
		if para != nil {
			blocks = append(blocks, *para)
			para = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if bareMarker(line) {
			// Empty item: pruned at the source, keeps the list open.
			continue
		}

		kind, item := classify(line)
		if kind == ListNone {
			closeList()
			if para == nil {
				para = &Block{Kind: ListNone}
			}
			para.Lines = append(para.Lines, line)
			continue
		}

		closePara()
		if open == nil || open.Kind != kind {
			closeList()
			open = &Block{Kind: kind}
		}
		open.Items = append(open.Items, item)
	}

	closeList()
	closePara()
	return blocks
}

// Prune removes items whose visible text is empty or a bare marker, and
// drops lists left with zero items. Paragraphs pass through untouched.
// Prune is idempotent: Prune(Prune(b)) == Prune(b).
func Prune(blocks []Block) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Kind == ListNone {
			out = append(out, b)
			continue
		}
		var items []Item
		for _, it := range b.Items {
			if strings.TrimSpace(it.Text) == "" || bareMarker(it.Text) {
				continue
			}
			items = append(items, it)
		}
		if len(items) == 0 {
			continue
		}
		b.Items = items
		out = append(out, b)
	}
	return out
}

// RenderHTML renders blocks as markup. Item and line text is escaped so
// literal &, < and > are never interpreted as markup.
func RenderHTML(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b.Kind {
		case ListBullet:
			sb.WriteString("<ul>")
			for _, it := range b.Items {
				sb.WriteString("<li>" + html.EscapeString(it.Text) + "</li>")
			}
			sb.WriteString("</ul>")

		case ListNumbered:
			sb.WriteString("<ol>")
			for _, it := range b.Items {
				sb.WriteString("<li>" + html.EscapeString(it.Text) + "</li>")
			}
			sb.WriteString("</ol>")

		case ListCheckbox:
			sb.WriteString(`<ul class="checkbox-list">`)
			for _, it := range b.Items {
				checked := ""
				if it.Checked {
					checked = " checked"
				}
				sb.WriteString(fmt.Sprintf(
					`<li><input type="checkbox"%s><label>%s</label></li>`,
					checked, html.EscapeString(it.Text)))
			}
			sb.WriteString("</ul>")

		default:
			sb.WriteString("<p>")
			for i, line := range b.Lines {
				if i > 0 {
					sb.WriteString("<br>")
				}
				sb.WriteString(html.EscapeString(line))
			}
			sb.WriteString("</p>")
		}
	}
	return sb.String()
}

// RenderText renders blocks for terminal display.
func RenderText(blocks []Block) string {
	var lines []string
	for _, b := range blocks {
		switch b.Kind {
		case ListBullet:
			for _, it := range b.Items {
				lines = append(lines, "• "+it.Text)
			}
		case ListNumbered:
			for i, it := range b.Items {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, it.Text))
			}
		case ListCheckbox:
			for _, it := range b.Items {
				box := "[ ]"
				if it.Checked {
					box = "[x]"
				}
				lines = append(lines, box+" "+it.Text)
			}
		default:
			lines = append(lines, b.Lines...)
		}
	}
	return strings.Join(lines, "\n")
}

// Source renders blocks back to shorthand text, the inverse of Parse
// for pruned input.
func Source(blocks []Block) string {
	var lines []string
	for _, b := range blocks {
		switch b.Kind {
		case ListBullet:
			for _, it := range b.Items {
				lines = append(lines, "* "+it.Text)
			}
		case ListNumbered:
			for i, it := range b.Items {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, it.Text))
			}
		case ListCheckbox:
			for _, it := range b.Items {
				if it.Checked {
					lines = append(lines, "> "+checkedMark+it.Text)
				} else {
					lines = append(lines, "> "+it.Text)
				}
			}
		default:
			lines = append(lines, b.Lines...)
		}
	}
	return strings.Join(lines, "\n")
}
