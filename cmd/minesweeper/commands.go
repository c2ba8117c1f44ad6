package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

var errQuit = errors.New("quit")

type gameMove uint8

const (
	Open gameMove = iota + 1
	Flag
	Chord
)

func (m gameMove) String() string {
	switch m {
	case Open:
		return "open"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	default:
		return "gameMove(" + strconv.Itoa(int(m)) + ")"
	}
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"n": 0,
	"d": 1,
	"p": 0,
	"h": 0,
	"q": 0,
}

var moves = map[string]gameMove{
	"o": Open,
	"f": Flag,
	"c": Chord,
}

const help = `commands:
  o ROW COL   open a cell (opening a revealed number chords it)
  f ROW COL   flag or unflag a cell
  c ROW COL   chord a revealed number
  n           new game
  d LEVEL     new game at easy, medium, hard, ROWS:COLS:MINES
              or rows=..&cols=..&mine_count=..
  p           print the board
  q           quit
`

func parsePoint(twoStrings []string) (p mines.Point, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

func (app *application) move(m gameMove, p mines.Point) (err error) {
	s := app.session
	switch m {
	case Open:
		s, err = s.Activate(p)
	case Flag:
		s, err = s.ToggleFlag(p)
	case Chord:
		s, err = s.Chord(p)
	}
	if err != nil {
		return err
	}
	app.session = s
	return nil
}

func (app *application) executeCommand(c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, 'h' for help", parts[0])
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	switch parts[0] {
	case "o", "f", "c":
		p, err := parsePoint(parts[1:])
		if err != nil {
			return err
		}
		return app.move(moves[parts[0]], p)
	case "n":
		return app.reset(app.session.Difficulty())
	case "d":
		d, err := config.ParseDifficulty(parts[1])
		if err != nil {
			return err
		}
		return app.reset(d)
	case "p":
		return nil
	case "h":
		fmt.Fprint(app.out, help)
		return nil
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}

func (app *application) reset(d mines.Difficulty) error {
	s, err := app.session.Reset(d)
	if err != nil {
		return err
	}
	app.session = s
	return nil
}
