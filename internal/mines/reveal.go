package mines

// Reveal opens the cell at p and, breadth first, every cell connected to it
// through safe cells with no mined neighbors, plus the numbered ring around
// that region. Revealed and flagged cells are never processed. A mine at p
// is opened on its own.
func Reveal(b *Board, p Point) *Board {
	next := b.Clone()
	if !next.InBounds(p) {
		return next
	}
	next.reveal(p)
	return next
}

func (b *Board) reveal(p Point) {
	todo := newCelltodo(len(b.cells))
	todo.add(b.index(p))

	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		cell := &b.cells[i]
		if cell.IsRevealed || cell.IsFlagged {
			continue
		}
		cell.IsRevealed = true
		if cell.IsMine || cell.AdjacentMines != 0 {
			continue
		}
		for q := range b.neighbors(b.point(i)) {
			j := b.index(q)
			if !b.cells[j].IsRevealed && !b.cells[j].IsFlagged {
				todo.add(j)
			}
		}
	}
}

// Chordable reports whether p is a revealed numbered cell whose flagged
// neighbor count equals its number.
func (b *Board) Chordable(p Point) bool {
	if !b.InBounds(p) {
		return false
	}
	cell := b.cells[b.index(p)]
	if !cell.IsRevealed || cell.IsMine || cell.AdjacentMines == 0 {
		return false
	}
	flags := 0
	for q := range b.neighbors(p) {
		if b.cells[b.index(q)].IsFlagged {
			flags++
		}
	}
	return flags == cell.AdjacentMines
}

// ChordReveal reveals every unflagged, unrevealed neighbor of p when p is
// chordable and returns an unchanged copy otherwise. Flags are trusted
// as-is: a wrongly flagged neighbor can leave a mine to be revealed.
func ChordReveal(b *Board, p Point) *Board {
	next := b.Clone()
	if !next.Chordable(p) {
		return next
	}
	for q := range next.neighbors(p) {
		c := next.cells[next.index(q)]
		if !c.IsRevealed && !c.IsFlagged {
			next.reveal(q)
		}
	}
	return next
}
