package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/mines"
)

type application struct {
	session *mines.Session
	timer   *mines.Timer
	out     io.Writer
}

func newApp(
	difficulty mines.Difficulty,
	rnd *rand.Rand,
	out io.Writer,
	tick time.Duration,
) (*application, error) {
	session, err := mines.NewSession(difficulty, rnd)
	if err != nil {
		return nil, err
	}
	app := &application{
		session: session,
		timer:   mines.NewTimer(tick),
		out:     out,
	}
	return app, nil
}

// Run reads commands from in, one per line, until in is exhausted, the
// player quits or ctx is done. The reader may stay blocked on in after Run
// returns; it exits once in yields another line or closes.
func (app *application) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.loop(gCtx, lines)
	})
	g.Go(func() error {
		select {
		case err := <-readErr:
			return err
		case <-gCtx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (app *application) loop(ctx context.Context, lines <-chan string) error {
	defer app.timer.Stop()

	app.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-app.timer.C:
			app.session = app.session.Tick()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := app.executeCommand(line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				log.WithFields(logrus.Fields{
					"command": line,
					"error":   err,
				}).Debug("rejected command")
				fmt.Fprintf(app.out, "error: %s\n", err)
				continue
			}
			app.timer.Sync(ctx, app.session)
			app.render()
		}
	}
}

func (app *application) render() {
	s := app.session
	fmt.Fprintf(app.out, "%s  mines: %d  time: %s  %s\n",
		s.Difficulty(),
		s.MinesRemaining(),
		formatTime(s.ElapsedSeconds()),
		s.Status(),
	)
	fmt.Fprint(app.out, s.View().String())
	switch s.Status() {
	case mines.Won:
		fmt.Fprintf(app.out, "you won in %s! 'n' for a new game\n", formatTime(s.ElapsedSeconds()))
	case mines.Lost:
		fmt.Fprint(app.out, "boom. 'n' for a new game\n")
	}
}

func formatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
