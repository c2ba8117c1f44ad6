package mines

import (
	"fmt"
	"iter"
	"strings"
)

type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	AdjacentMines int // 0-8, meaningless for mines
}

// Board is a fixed rows x cols grid stored row-major. Operations in this
// package never modify a board they are given; they return a new one.
type Board struct {
	rows, cols int
	cells      []Cell
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }
func (b *Board) Size() int { return len(b.cells) }

func (b *Board) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < b.rows && 0 <= p.Col && p.Col < b.cols
}

func (b *Board) index(p Point) int {
	return p.Row*b.cols + p.Col
}

func (b *Board) point(i int) Point {
	return Point{i / b.cols, i % b.cols}
}

// At returns a copy of the cell at p. p must be in bounds.
func (b *Board) At(p Point) Cell {
	return b.cells[b.index(p)]
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// All yields every point of the board with its cell in row-major order.
func (b *Board) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, cell := range b.cells {
			if !yield(b.point(i), cell) {
				return
			}
		}
	}
}

func (b *Board) neighbors(p Point) iter.Seq[Point] {
	return p.Neighbors(b.rows, b.cols)
}

func (b *Board) Mines() (count int) {
	for _, c := range b.cells {
		if c.IsMine {
			count++
		}
	}
	return
}

func (b *Board) Flags() (count int) {
	for _, c := range b.cells {
		if c.IsFlagged {
			count++
		}
	}
	return
}

// RevealedSafe counts revealed cells that are not mines.
func (b *Board) RevealedSafe() (count int) {
	for _, c := range b.cells {
		if c.IsRevealed && !c.IsMine {
			count++
		}
	}
	return
}

// String prints the full layout, mines included: '*' for a mine, the
// adjacency number for a safe cell, '-' for a safe cell with no mined
// neighbors.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			c := b.cells[row*b.cols+col]
			var ch string
			switch {
			case c.IsMine:
				ch = "* "
			case c.AdjacentMines == 0:
				ch = "- "
			default:
				ch = fmt.Sprintf("%d ", c.AdjacentMines)
			}
			fmt.Fprint(&sb, ch)
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
