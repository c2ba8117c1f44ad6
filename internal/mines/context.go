package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown CellStatus = -2
	Flag    CellStatus = -1
	Mine    CellStatus = 64 // revealed mine
	// 0-8 for an open cell with that many mined neighbors
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "#"
	case Flag:
		return "F"
	case Mine:
		return "*"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// CellView is what a front end may know about a cell: mines and numbers
// only show up once the cell is revealed.
type CellView struct {
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
	Mine     bool `json:"mine,omitempty"`
	Count    int  `json:"count,omitempty"`
}

func newCellView(c Cell) CellView {
	v := CellView{Revealed: c.IsRevealed, Flagged: c.IsFlagged}
	if c.IsRevealed {
		v.Mine = c.IsMine
		if !c.IsMine {
			v.Count = c.AdjacentMines
		}
	}
	return v
}

func (v CellView) Status() CellStatus {
	switch {
	case v.Revealed && v.Mine:
		return Mine
	case v.Revealed:
		return CellStatus(v.Count)
	case v.Flagged:
		return Flag
	default:
		return Unknown
	}
}

type View struct {
	Rows           int          `json:"rows"`
	Cols           int          `json:"cols"`
	Cells          [][]CellView `json:"cells"`
	Status         Status       `json:"status"`
	MinesRemaining int          `json:"mines_remaining"`
	ElapsedSeconds int          `json:"elapsed_seconds"`
}

func cellViews(b *Board) [][]CellView {
	cells := make([][]CellView, b.rows)
	for row := range b.rows {
		cells[row] = make([]CellView, b.cols)
		for col := range b.cols {
			cells[row][col] = newCellView(b.cells[row*b.cols+col])
		}
	}
	return cells
}

// String draws the grid with a column header and row labels.
func (v View) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "   ")
	for col := range v.Cols {
		fmt.Fprintf(&b, "%2d", col%100)
	}
	fmt.Fprint(&b, "\n")
	for row, cells := range v.Cells {
		fmt.Fprintf(&b, "%2d ", row%100)
		for _, c := range cells {
			fmt.Fprint(&b, " "+c.Status().String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
