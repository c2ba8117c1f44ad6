package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 2))
}

// boardFrom builds a board from rows of '*' (mine) and anything else (safe)
// and computes adjacency.
func boardFrom(t *testing.T, layout ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(layout), len(layout[0]))
	require.NoError(t, err)
	for row, line := range layout {
		require.Len(t, line, b.cols)
		for col, ch := range line {
			if ch == '*' {
				b.cells[row*b.cols+col].IsMine = true
			}
		}
	}
	return CalculateAdjacency(b)
}

// sessionFrom returns a running session past its first click on the given
// layout.
func sessionFrom(t *testing.T, layout ...string) *Session {
	t.Helper()
	b := boardFrom(t, layout...)
	return &Session{
		difficulty: Difficulty{
			Rows: b.rows, Cols: b.cols, MineCount: b.Mines(), Name: "test",
		},
		board:          b,
		status:         Playing,
		minesRemaining: b.Mines(),
		timerRunning:   true,
		rnd:            newRand(1),
	}
}

func flag(b *Board, points ...Point) {
	for _, p := range points {
		b.cells[b.index(p)].IsFlagged = true
	}
}

func revealed(b *Board) (points []Point) {
	for p, c := range b.All() {
		if c.IsRevealed {
			points = append(points, p)
		}
	}
	return
}
