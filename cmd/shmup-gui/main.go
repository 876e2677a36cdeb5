// Command shmup-gui plays the shooter in a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/tomz197/shmup/internal/audio"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/game"
	"github.com/tomz197/shmup/internal/gui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shmup-gui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, closeLog, err := cfg.NewLogger(os.Stderr)
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

	logger.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "seed", cfg.Seed)
	if err := gui.Run(cfg, sounds, logger); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
