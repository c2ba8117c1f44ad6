package mines

import (
	"fmt"
	"iter"
)

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Neighbors yields the up-to-8 points sharing an edge or a corner with p
// that lie inside a rows x cols grid.
func (p Point) Neighbors(rows, cols int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			r := p.Row + dr
			if r < 0 || r >= rows {
				continue
			}
			for dc := -1; dc <= 1; dc++ {
				c := p.Col + dc
				if c < 0 || c >= cols || (dr == 0 && dc == 0) {
					continue
				}
				if !yield(Point{r, c}) {
					return
				}
			}
		}
	}
}
