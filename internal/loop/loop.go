// Package loop runs the game in a terminal with the Input → Update → Draw cycle.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shmup/internal/clock"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/game"
	"github.com/tomz197/shmup/internal/input"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/rng"
)

// Options configures a terminal session.
type Options struct {
	Config       *config.Config // Defaults when nil
	Logger       *log.Logger    // Discards when nil
	Sounds       game.Sounds
	TermSizeFunc draw.TermSizeFunc // Reads os.Stdout when nil
}

// Session is one terminal game: a game, the canvas it is drawn on and the
// input stream that drives it.
type Session struct {
	game   *game.Game
	cfg    *config.Config
	log    *log.Logger
	clock  *clock.Wall
	stream *input.Stream

	canvas   *draw.Canvas
	renderer *draw.Renderer
	out      *draw.ChunkWriter
	view     draw.Viewport
	termSize draw.TermSizeFunc
}

// NewSession creates a session on the title screen writing to w.
func NewSession(stream *input.Stream, w io.Writer, opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	var src rng.Source
	if cfg.Seed != 0 {
		src = rng.NewSeeded(cfg.Seed)
	} else {
		src = rng.New()
	}
	wall := clock.NewWall()
	env := &object.Env{Clock: wall, Rand: src}

	canvas := draw.NewScaledCanvas(1, 1, cfg.Window.Width, cfg.Window.Height)
	return &Session{
		game:     game.New(cfg, env, Assets(cfg), opts.Sounds, logger),
		cfg:      cfg,
		log:      logger,
		clock:    wall,
		stream:   stream,
		canvas:   canvas,
		renderer: draw.NewRenderer(canvas),
		out:      draw.NewChunkWriter(w, 0, 0),
		termSize: termSize,
	}
}

// Assets returns the terminal shapes sized for cfg.
func Assets(cfg *config.Config) game.Assets {
	size := cfg.Player.Size
	return game.Assets{
		Ship:      draw.Ship(size),
		Shot:      draw.Shot(size/5, size/2.5),
		Enemy:     draw.Enemy(size),
		EnemyShot: draw.EnemyShot(size * 0.3),
		Debris:    draw.Debris(size * 0.3),
		Shield:    draw.Shield(size),
	}
}

// Run starts the main game loop. Blocks until the player quits, r is
// exhausted or ctx is done.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	s := NewSession(input.StartStream(r), w, opts)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	ticker := time.NewTicker(targetFrameTime)
	defer ticker.Stop()

	for {
		quit, err := s.Frame()
		if err != nil {
			return err
		}
		if quit {
			s.log.Info("quit", "score", s.game.State.Score)
			return nil
		}

		select {
		case <-ctx.Done():
			s.log.Info("stopped", "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
}

// Frame runs one Input → Update → Draw cycle. Returns true when the player quit.
func (s *Session) Frame() (bool, error) {
	s.clock.Tick()

	// ===== INPUT PHASE =====
	keys := s.stream.Read()
	if keys.Quit {
		return true, nil
	}

	// ===== UPDATE PHASE =====
	if err := s.updateScreen(); err != nil {
		return false, err
	}
	before := s.game.State.Phase
	s.game.Update(gameInput(keys))
	if s.game.State.Phase != before {
		s.stream.Reset()
	}

	// ===== DRAW PHASE =====
	return false, s.drawFrame()
}

// Game returns the running game.
func (s *Session) Game() *game.Game {
	return s.game
}

func gameInput(k input.Keys) game.Input {
	return game.Input{
		Left:         k.Left,
		Right:        k.Right,
		Up:           k.Up,
		Down:         k.Down,
		Fire:         k.Fire,
		Start:        k.Start,
		ToggleTuning: k.ToggleTuning,
		RateDelta:    k.RateDelta,
		AimDelta:     k.AimDelta,
	}
}

// updateScreen checks for terminal resize and updates canvas scaling.
func (s *Session) updateScreen() error {
	termWidth, termHeight, err := s.termSize()
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}

	v := draw.Fit(termWidth, termHeight, s.cfg.Window.Width, s.cfg.Window.Height)
	if v == s.view {
		return nil
	}
	s.view = v
	s.canvas.Resize(v.Cols, v.Rows)
	s.canvas.SetOffset(v.OffsetCol, v.OffsetRow)
	s.out.SetOffset(v.OffsetCol, 0)
	s.log.Debug("viewport", "cols", v.Cols, "rows", v.Rows, "term", fmt.Sprintf("%dx%d", termWidth, termHeight))
	return nil
}

// drawFrame clears the screen and draws the field and the UI in one write.
func (s *Session) drawFrame() error {
	draw.ClearScreen(s.out)
	s.canvas.Clear()

	s.game.Draw(s.renderer)

	s.canvas.Render(s.out)
	s.canvas.RenderBorder(s.out)

	// Draw UI overlay (after canvas render so it's on top)
	s.drawUI()

	return s.out.Flush()
}
