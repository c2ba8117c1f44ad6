package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

var log = logrus.New()

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := config.SetupLogging(log, os.Stderr); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log

	difficulty, err := config.Difficulty()
	if err != nil {
		log.Fatal("unable to read difficulty: ", err)
	}

	rnd, err := config.Rand()
	if err != nil {
		log.Fatal("unable to seed mine placement: ", err)
	}

	a, err := newApp(difficulty, rnd, os.Stdout, time.Second)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	log.WithField("difficulty", difficulty.Key()).Debug("starting up")

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run(ctx, os.Stdin)
	}()

	select {
	case <-ctx.Done():
		log.Info("interrupted")
	case err := <-errCh:
		if err != nil {
			log.Fatal("exit reason: ", err)
		}
	}
}
