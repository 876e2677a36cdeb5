package loop

import (
	"fmt"

	"github.com/tomz197/shmup/internal/game"
)

// drawUI draws the screen text for the current phase. Columns are relative to
// the canvas; rows are absolute, with row 1 reserved for the HUD.
func (s *Session) drawUI() {
	centerX := s.view.Cols / 2
	centerY := s.view.OffsetRow + s.view.Rows/2

	switch s.game.State.Phase {
	case game.PhaseTitle:
		s.drawStartScreen(centerX, centerY)
	case game.PhasePlaying:
		s.drawPlayingHUD()
	case game.PhaseOver:
		s.drawOverScreen(centerX, centerY)
	}
	if s.game.State.ShowTuning {
		s.drawTuning()
	}
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	s.out.WriteCentered(centerX, centerY-4, titleText)
	s.out.WriteCentered(centerX, centerY-2, startPrompt)
	for i, line := range controlsText {
		s.out.WriteCentered(centerX, centerY+1+i, line)
	}
}

// drawPlayingHUD draws the in-game HUD (score, lives, shield).
func (s *Session) drawPlayingHUD() {
	st := s.game.State

	s.out.WriteAt(1, 1, fmt.Sprintf("Score: %d", st.Score))

	lives := fmt.Sprintf("Lives: %d", st.Lives)
	s.out.WriteAt(max(s.view.Cols-len(lives)+1, 1), 1, lives)

	if s.game.Shielded() {
		s.out.WriteCentered(s.view.Cols/2, 1, shieldText)
	}
}

// drawOverScreen draws the game over screen.
func (s *Session) drawOverScreen(centerX, centerY int) {
	s.out.WriteCentered(centerX, centerY-2, gameOverText)
	s.out.WriteCentered(centerX, centerY, fmt.Sprintf("Score: %d", s.game.State.Score))
	s.out.WriteCentered(centerX, centerY+2, restartText)
}

// drawTuning lists the fire controls below the HUD.
func (s *Session) drawTuning() {
	row := s.view.OffsetRow + 1
	s.out.WriteAt(1, row, fmt.Sprintf("Fire rate: %.0f/s", s.game.FireRate()))
	s.out.WriteAt(1, row+1, fmt.Sprintf("Direction: %.0f deg", s.game.FireDirection()))
}
