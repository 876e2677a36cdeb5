package loop

import (
	"time"

	"github.com/tomz197/shmup/internal/clock"
)

// Frame timing.
const targetFrameTime = time.Second / time.Duration(clock.TargetFPS)

// Screen text.
const (
	titleText    = "S H M U P"
	startPrompt  = "Press ENTER to start"
	restartText  = "Press ENTER to restart"
	gameOverText = "GAME OVER"
	shieldText   = "SHIELD"
)

// controlsText is listed on the title screen, one line each.
var controlsText = []string{
	"WASD / arrows  move",
	"SPACE          fire",
	"H              tuning",
	"- =            fire rate",
	"[ ]            fire direction",
	"Q              quit",
}
