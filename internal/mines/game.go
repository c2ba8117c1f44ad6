package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Session is one game from the first click to a win or a loss. The game
// state of a Session is never modified after it is returned: every move
// hands back a new one and the previous value, board included, stays valid.
// All sessions derived from one NewSession share its random source, so
// activating the same first-click-pending session twice lays out two
// different boards.
type Session struct {
	difficulty        Difficulty
	board             *Board
	status            Status
	minesRemaining    int
	firstClickPending bool
	elapsed           int
	timerRunning      bool
	rnd               *rand.Rand
}

// NewSession starts a game on an empty board. Mines are placed on the first
// activation so that the first opened cell is never a mine.
func NewSession(d Difficulty, r *rand.Rand) (*Session, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(d.Rows, d.Cols)
	if err != nil {
		return nil, err
	}
	s := &Session{
		difficulty:        d,
		board:             board,
		status:            Playing,
		minesRemaining:    d.MineCount,
		firstClickPending: true,
		rnd:               r,
	}
	Log.WithField("difficulty", d.Key()).Debug("new session")
	return s, nil
}

func (s *Session) Difficulty() Difficulty  { return s.difficulty }
func (s *Session) Board() *Board           { return s.board }
func (s *Session) Status() Status          { return s.status }
func (s *Session) MinesRemaining() int     { return s.minesRemaining }
func (s *Session) FirstClickPending() bool { return s.firstClickPending }
func (s *Session) TimerRunning() bool      { return s.timerRunning }
func (s *Session) ElapsedSeconds() int     { return s.elapsed }

func (s *Session) Over() bool {
	return s.status != Playing
}

func (s *Session) clone() *Session {
	next := *s
	return &next
}

func (s *Session) checkPoint(p Point) error {
	if !s.board.InBounds(p) {
		return fmt.Errorf(
			"%w: %s on %dx%d", ErrOutOfBounds, p, s.board.rows, s.board.cols,
		)
	}
	return nil
}

// Activate opens the cell at p. On the first activation the mines are laid
// out around p first and the timer starts. Activating an already revealed
// cell chords it. Flagged cells and finished games are left alone.
func (s *Session) Activate(p Point) (*Session, error) {
	if err := s.checkPoint(p); err != nil {
		return s, err
	}
	if s.Over() {
		return s, nil
	}
	if s.board.At(p).IsRevealed {
		return s.Chord(p)
	}

	next := s.clone()
	if next.firstClickPending {
		mined, err := PlaceMines(next.board, next.difficulty.MineCount, p, next.rnd)
		if err != nil {
			return s, err
		}
		next.board = CalculateAdjacency(mined)
		next.firstClickPending = false
		next.timerRunning = true
		Log.WithFields(logrus.Fields{
			"difficulty": next.difficulty.Key(),
			"first":      p.String(),
		}).Debug("mines placed")
	}

	if next.board.At(p).IsFlagged {
		return next, nil
	}

	next.settle(Reveal(next.board, p))
	return next, nil
}

// Chord reveals the hidden neighbors of a revealed number once as many
// neighbors are flagged as the number says. Otherwise nothing happens.
func (s *Session) Chord(p Point) (*Session, error) {
	if err := s.checkPoint(p); err != nil {
		return s, err
	}
	if s.Over() || !s.board.Chordable(p) {
		return s, nil
	}
	next := s.clone()
	next.settle(ChordReveal(next.board, p))
	return next, nil
}

// settle installs the board produced by a reveal and decides whether the
// game is over.
func (s *Session) settle(b *Board) {
	prev := s.board
	s.board = b

	detonated := false
	for i, c := range b.cells {
		if c.IsMine && c.IsRevealed && !prev.cells[i].IsRevealed {
			detonated = true
			break
		}
	}

	switch {
	case detonated:
		for i := range b.cells {
			if b.cells[i].IsMine {
				b.cells[i].IsRevealed = true
			}
		}
		s.status = Lost
		s.timerRunning = false
	case b.RevealedSafe() == s.difficulty.SafeCells():
		s.status = Won
		s.timerRunning = false
	default:
		return
	}

	Log.WithFields(logrus.Fields{
		"difficulty": s.difficulty.Key(),
		"status":     s.status.String(),
		"elapsed":    s.elapsed,
	}).Debug("game over")
}

// ToggleFlag flags or unflags a hidden cell and adjusts the remaining mine
// counter, which goes negative when more flags than mines are placed.
func (s *Session) ToggleFlag(p Point) (*Session, error) {
	if err := s.checkPoint(p); err != nil {
		return s, err
	}
	if s.Over() || s.board.At(p).IsRevealed {
		return s, nil
	}

	next := s.clone()
	next.board = s.board.Clone()
	cell := &next.board.cells[next.board.index(p)]
	cell.IsFlagged = !cell.IsFlagged
	if cell.IsFlagged {
		next.minesRemaining--
	} else {
		next.minesRemaining++
	}
	return next, nil
}

// Reset throws the session away and starts a fresh one, either with the
// same difficulty or a new one.
func (s *Session) Reset(d Difficulty) (*Session, error) {
	return NewSession(d, s.rnd)
}

// Tick advances the clock by one second while the timer runs.
func (s *Session) Tick() *Session {
	if !s.timerRunning || s.Over() {
		return s
	}
	next := s.clone()
	next.elapsed++
	return next
}

func (s *Session) View() View {
	return View{
		Rows:           s.board.rows,
		Cols:           s.board.cols,
		Cells:          cellViews(s.board),
		Status:         s.status,
		MinesRemaining: s.minesRemaining,
		ElapsedSeconds: s.elapsed,
	}
}
