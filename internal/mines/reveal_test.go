package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var cornerMine = []string{
	"....",
	"....",
	"..*.",
	"....",
}

func TestRevealCascade(t *testing.T) {
	b := boardFrom(t, cornerMine...)
	next := Reveal(b, Point{0, 0})

	assert.Empty(t, revealed(b), "input board must not change")
	assert.Len(t, revealed(next), 12)
	for _, p := range []Point{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		assert.False(t, next.At(p).IsRevealed, "%s", p)
	}
	assert.True(t, next.At(Point{1, 1}).IsRevealed)
	assert.True(t, next.At(Point{3, 1}).IsRevealed)
}

func TestRevealSkipsFlags(t *testing.T) {
	b := boardFrom(t, cornerMine...)
	flag(b, Point{0, 3})
	next := Reveal(b, Point{0, 0})

	assert.Len(t, revealed(next), 11)
	assert.False(t, next.At(Point{0, 3}).IsRevealed)
	assert.True(t, next.At(Point{0, 3}).IsFlagged)
	assert.True(t, next.At(Point{1, 3}).IsRevealed)
}

func TestRevealFlaggedStart(t *testing.T) {
	b := boardFrom(t, cornerMine...)
	flag(b, Point{0, 0})
	assert.Empty(t, revealed(Reveal(b, Point{0, 0})))
}

func TestRevealSingleCells(t *testing.T) {
	b := boardFrom(t, cornerMine...)

	mine := Reveal(b, Point{2, 2})
	assert.Equal(t, []Point{{2, 2}}, revealed(mine))

	number := Reveal(b, Point{1, 1})
	assert.Equal(t, []Point{{1, 1}}, revealed(number))
}

func TestRevealIdempotent(t *testing.T) {
	b := Reveal(boardFrom(t, cornerMine...), Point{0, 0})
	for p, c := range b.All() {
		if c.IsRevealed && c.AdjacentMines == 0 {
			assert.Equal(t, b, Reveal(b, p), "%s", p)
		}
	}
}

func TestRevealOutOfBounds(t *testing.T) {
	b := boardFrom(t, cornerMine...)
	assert.Equal(t, b, Reveal(b, Point{4, 0}))
	assert.Equal(t, b, Reveal(b, Point{0, -1}))
}

func TestRevealWholeBoardWithoutMines(t *testing.T) {
	b := boardFrom(t, "...", "...")
	assert.Equal(t, 6, Reveal(b, Point{1, 2}).RevealedSafe())
}

// The center is a 2 with mines at the top-left and bottom-right corners.
var chordLayout = []string{
	"*..",
	"...",
	"..*",
}

func TestChordRevealSatisfied(t *testing.T) {
	b := Reveal(boardFrom(t, chordLayout...), Point{1, 1})
	assert.Equal(t, 2, b.At(Point{1, 1}).AdjacentMines)

	// One flag is on a mine, the other is misplaced on a safe cell.
	flag(b, Point{0, 0}, Point{0, 1})
	assert.True(t, b.Chordable(Point{1, 1}))

	next := ChordReveal(b, Point{1, 1})
	for _, p := range []Point{{0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		assert.True(t, next.At(p).IsRevealed, "%s", p)
	}
	assert.True(t, next.At(Point{2, 2}).IsMine)
	assert.False(t, next.At(Point{0, 0}).IsRevealed)
	assert.False(t, next.At(Point{0, 1}).IsRevealed)
	assert.False(t, b.At(Point{2, 2}).IsRevealed, "input board must not change")
}

func TestChordRevealUnsatisfied(t *testing.T) {
	b := Reveal(boardFrom(t, chordLayout...), Point{1, 1})
	flag(b, Point{0, 0})

	assert.False(t, b.Chordable(Point{1, 1}))
	assert.Equal(t, b, ChordReveal(b, Point{1, 1}))
}

func TestChordRevealIgnoresNonNumbers(t *testing.T) {
	b := boardFrom(t, cornerMine...)

	// hidden
	assert.Equal(t, b, ChordReveal(b, Point{1, 1}))

	// revealed zero
	opened := Reveal(b, Point{0, 0})
	assert.Equal(t, opened, ChordReveal(opened, Point{0, 0}))

	// revealed mine
	boom := Reveal(b, Point{2, 2})
	assert.False(t, boom.Chordable(Point{2, 2}))

	assert.False(t, b.Chordable(Point{-1, 0}))
}

func TestChordRevealCascades(t *testing.T) {
	b := boardFrom(t,
		"*....",
		".....",
		".....",
	)
	b = Reveal(b, Point{1, 1})
	flag(b, Point{0, 0})

	next := ChordReveal(b, Point{1, 1})
	assert.Equal(t, 14, next.RevealedSafe())
	assert.False(t, next.At(Point{0, 0}).IsRevealed)
}
