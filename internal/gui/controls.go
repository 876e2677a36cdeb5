package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/shmup/internal/game"
	"github.com/tomz197/shmup/internal/input"
)

// Keyboard reports key and pointer state for one tick.
type Keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	Dragging() bool
}

// ebitenKeyboard reads the real devices.
type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenKeyboard) Dragging() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// controls decodes devices into game input, tracking pointer drags.
type controls struct {
	kb       Keyboard
	dragging bool
	lastX    int
	lastY    int
}

func anyPressed(kb Keyboard, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kb.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(kb Keyboard, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kb.JustPressed(k) {
			return true
		}
	}
	return false
}

// quit reports whether the player asked to close the game.
func (c *controls) quit() bool {
	return anyJustPressed(c.kb, ebiten.KeyEscape, ebiten.KeyQ)
}

// read returns this tick's input.
func (c *controls) read() game.Input {
	kb := c.kb
	in := game.Input{
		Left:         anyPressed(kb, ebiten.KeyLeft, ebiten.KeyA),
		Right:        anyPressed(kb, ebiten.KeyRight, ebiten.KeyD),
		Up:           anyPressed(kb, ebiten.KeyUp, ebiten.KeyW),
		Down:         anyPressed(kb, ebiten.KeyDown, ebiten.KeyS),
		Fire:         kb.Pressed(ebiten.KeySpace),
		Start:        anyJustPressed(kb, ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		ToggleTuning: kb.JustPressed(ebiten.KeyH),
	}

	if kb.JustPressed(ebiten.KeyMinus) {
		in.RateDelta -= input.RateStep
	}
	if kb.JustPressed(ebiten.KeyEqual) {
		in.RateDelta += input.RateStep
	}
	if kb.JustPressed(ebiten.KeyBracketLeft) {
		in.AimDelta -= input.AimStep
	}
	if kb.JustPressed(ebiten.KeyBracketRight) {
		in.AimDelta += input.AimStep
	}

	x, y := kb.Cursor()
	if kb.Dragging() {
		if c.dragging {
			in.DragX = float64(x - c.lastX)
			in.DragY = float64(y - c.lastY)
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.lastX, c.lastY = x, y

	return in
}
