// Package gui runs the game in a desktop window with ebiten.
package gui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/shmup/internal/clock"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/game"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/rng"
)

// Title of the window.
const Title = "shmup"

// Window adapts a game to ebiten.Game.
type Window struct {
	game     *game.Game
	cfg      *config.Config
	log      *log.Logger
	clock    *clock.Wall
	controls controls
	renderer screenRenderer
}

// New creates a window on the title screen. cfg must be valid.
func New(cfg *config.Config, sounds game.Sounds, logger *log.Logger) *Window {
	return newWindow(cfg, sounds, logger, ebitenKeyboard{}, Assets(cfg.Player.Size))
}

func newWindow(cfg *config.Config, sounds game.Sounds, logger *log.Logger, kb Keyboard, assets game.Assets) *Window {
	var src rng.Source
	if cfg.Seed != 0 {
		src = rng.NewSeeded(cfg.Seed)
	} else {
		src = rng.New()
	}
	wall := clock.NewWall()
	env := &object.Env{Clock: tpsClock{wall}, Rand: src}

	return &Window{
		game:     game.New(cfg, env, assets, sounds, logger),
		cfg:      cfg,
		log:      logger,
		clock:    wall,
		controls: controls{kb: kb},
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	w.clock.Tick()
	if w.controls.quit() {
		w.log.Info("quit", "score", w.game.State.Score)
		return ebiten.Termination
	}
	w.game.Update(w.controls.read())
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.renderer.dst = screen
	w.game.Draw(&w.renderer)
	w.drawUI(screen)
}

// Layout implements ebiten.Game. The field keeps its logical size and ebiten
// scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.cfg.Window.Width), int(w.cfg.Window.Height)
}

// Game returns the running game.
func (w *Window) Game() *game.Game {
	return w.game
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, sounds game.Sounds, logger *log.Logger) error {
	ebiten.SetWindowSize(int(cfg.Window.Width), int(cfg.Window.Height))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(clock.TargetFPS))
	return ebiten.RunGame(New(cfg, sounds, logger))
}
