// Command shmup plays the shooter in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/shmup/internal/audio"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/game"
	"github.com/tomz197/shmup/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shmup: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := cfg.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	var sounds game.Sounds
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			sounds = player.Sounds()
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "seed", cfg.Seed)
	if err := loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		Config: cfg,
		Logger: logger,
		Sounds: sounds,
	}); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
