package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tomz197/shmup/internal/game"
)

// The debug font is approximately 6x16 pixels per character.
const (
	charWidth  = 6
	lineHeight = 16
)

var controlsText = []string{
	"WASD / arrows / drag  move",
	"SPACE                 fire",
	"H                     tuning",
	"- =                   fire rate",
	"[ ]                   fire direction",
	"ESC                   quit",
}

// drawUI draws the screen text for the current phase.
func (w *Window) drawUI(screen *ebiten.Image) {
	width := int(w.cfg.Window.Width)
	cx, cy := width/2, int(w.cfg.Window.Height)/2
	st := w.game.State

	switch st.Phase {
	case game.PhaseTitle:
		printCentered(screen, "S H M U P", cx, cy-4*lineHeight)
		printCentered(screen, "Press ENTER to start", cx, cy-2*lineHeight)
		for i, line := range controlsText {
			printCentered(screen, line, cx, cy+i*lineHeight)
		}
	case game.PhasePlaying:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", st.Score), 4, 4)
		lives := fmt.Sprintf("Lives: %d", st.Lives)
		ebitenutil.DebugPrintAt(screen, lives, width-len(lives)*charWidth-4, 4)
		if w.game.Shielded() {
			printCentered(screen, "SHIELD", cx, 4)
		}
	case game.PhaseOver:
		printCentered(screen, "GAME OVER", cx, cy-2*lineHeight)
		printCentered(screen, fmt.Sprintf("Score: %d", st.Score), cx, cy)
		printCentered(screen, "Press ENTER to restart", cx, cy+2*lineHeight)
	}

	if st.ShowTuning {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Fire rate: %.0f/s", w.game.FireRate()), 4, 4+lineHeight)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Direction: %.0f deg", w.game.FireDirection()), 4, 4+2*lineHeight)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()), 4, 4+3*lineHeight)
	}
}

func printCentered(screen *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, s, cx-len(s)*charWidth/2, y)
}
