package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

func TestRegion_InsertAtLiveCursor(t *testing.T) {
	g := NewRegion("hello world")
	g.SetLive(5, 5)

	g.Apply(Insert{Text: ","})

	assert.Equal(t, "hello, world", g.Text())
	assert.Equal(t, 6, g.Live().Start)
	assert.Equal(t, 6, g.Live().End)
}

func TestRegion_InsertReplayedAcrossRanges(t *testing.T) {
	g := NewRegion("aa bb cc")
	g.SetLive(0, 0)
	_, err := g.AddRange(3, 3)
	require.NoError(t, err)
	_, err = g.AddRange(6, 6)
	require.NoError(t, err)

	g.Apply(Insert{Text: "x"})

	assert.Equal(t, "xaa xbb xcc", g.Text())

	// Every caret sits just after its inserted character.
	assert.Equal(t, 1, g.Live().Start)
	ranges := g.Ranges()
	require.Len(t, ranges, 2)
	assert.Equal(t, 5, ranges[0].Start)
	assert.Equal(t, 9, ranges[1].Start)
}

func TestRegion_SecondCommandStaysPositioned(t *testing.T) {
	// Boundaries are refreshed after each replay, so a follow-up
	// command lands in the right places.
	g := NewRegion("aa bb")
	g.SetLive(0, 0)
	_, err := g.AddRange(3, 3)
	require.NoError(t, err)

	g.Apply(Insert{Text: "x"})
	g.Apply(Insert{Text: "y"})

	assert.Equal(t, "xyaa xybb", g.Text())
}

func TestRegion_DeleteBackwardAcrossRanges(t *testing.T) {
	g := NewRegion("xaa xbb")
	g.SetLive(1, 1)
	_, err := g.AddRange(5, 5)
	require.NoError(t, err)

	g.Apply(DeleteBackward{})

	assert.Equal(t, "aa bb", g.Text())
}

func TestRegion_DeleteBackwardAtStartIsNoop(t *testing.T) {
	g := NewRegion("abc")
	g.SetLive(0, 0)

	g.Apply(DeleteBackward{})

	assert.Equal(t, "abc", g.Text())
}

func TestRegion_DeleteSelection(t *testing.T) {
	g := NewRegion("hello world")
	g.SetLive(5, 11)

	g.Apply(DeleteBackward{})

	assert.Equal(t, "hello", g.Text())
	assert.Equal(t, 5, g.Live().Start)
}

func TestRegion_WrapInlineCode(t *testing.T) {
	g := NewRegion("run go test now")
	g.SetLive(4, 11) // "go test"
	_, err := g.AddRange(12, 15) // "now"
	require.NoError(t, err)

	g.Apply(InlineCode())

	assert.Equal(t, "run `go test` `now`", g.Text())

	// Wrapped ranges still cover the original text.
	assert.Equal(t, 5, g.Live().Start)
	assert.Equal(t, 12, g.Live().End)
}

func TestRegion_ReplayOrderIndependentForDisjointRanges(t *testing.T) {
	build := func(offsets ...int) *Region {
		g := NewRegion("aa bb cc dd")
		g.SetLive(0, 0)
		for _, off := range offsets {
			_, err := g.AddRange(off, off)
			require.NoError(t, err)
		}
		return g
	}

	a := build(3, 6, 9)
	b := build(9, 6, 3)

	a.Apply(Insert{Text: "!"})
	b.Apply(Insert{Text: "!"})

	assert.Equal(t, a.Text(), b.Text())
	assert.Equal(t, "!aa !bb !cc !dd", a.Text())
}

func TestRegion_UndoRestoresAtomically(t *testing.T) {
	g := NewRegion("aa bb")
	g.SetLive(0, 0)
	_, err := g.AddRange(3, 3)
	require.NoError(t, err)

	g.Apply(Insert{Text: "x"})
	require.Equal(t, "xaa xbb", g.Text())

	require.True(t, g.Undo())

	assert.Equal(t, "aa bb", g.Text())
	assert.Equal(t, 0, g.Live().Start)
	ranges := g.Ranges()
	require.Len(t, ranges, 1)
	assert.Equal(t, 3, ranges[0].Start)

	// Single-level undo.
	assert.False(t, g.Undo())
}

func TestRegion_AddRangeDuplicateRejected(t *testing.T) {
	g := NewRegion("abc")
	_, err := g.AddRange(1, 2)
	require.NoError(t, err)

	_, err = g.AddRange(1, 2)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRegion_RangesClampedToBounds(t *testing.T) {
	g := NewRegion("abc")

	r, err := g.AddRange(10, -2)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 3, r.End)
	assert.NotEmpty(t, r.ID)
}
