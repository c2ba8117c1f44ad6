package mines

import (
	"fmt"
	"math/rand/v2"
)

// PlaceMines scatters mineCount mines uniformly at random over b, never on
// protected. Rejection sampling: a draw that hits the protected cell or an
// existing mine is discarded. Expected retries stay small while mines cover
// well under half of the board; they grow without bound as mineCount nears
// the cell count.
func PlaceMines(b *Board, mineCount int, protected Point, r *rand.Rand) (*Board, error) {
	if mineCount < 0 || mineCount >= b.Size() {
		return nil, fmt.Errorf(
			"%w: %d mines on %dx%d", ErrInvalidMineCount, mineCount, b.rows, b.cols,
		)
	}
	if !b.InBounds(protected) {
		return nil, fmt.Errorf("%w: protected cell %s", ErrOutOfBounds, protected)
	}

	next := b.Clone()
	skip := next.index(protected)

	placed := 0
	for placed < mineCount {
		i := r.IntN(next.rows)*next.cols + r.IntN(next.cols)
		if i == skip || next.cells[i].IsMine {
			continue
		}
		next.cells[i].IsMine = true
		placed++
	}

	return next, nil
}

// CalculateAdjacency fills in AdjacentMines for every safe cell from the
// current mine layout.
func CalculateAdjacency(b *Board) *Board {
	next := b.Clone()
	for i := range next.cells {
		if next.cells[i].IsMine {
			next.cells[i].AdjacentMines = 0
			continue
		}
		n := 0
		for q := range next.neighbors(next.point(i)) {
			if next.cells[next.index(q)].IsMine {
				n++
			}
		}
		next.cells[i].AdjacentMines = n
	}
	return next
}
