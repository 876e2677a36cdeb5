package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/shmup/internal/clock"
)

// tpsClock reads elapsed time from the wall and the frame rate from ebiten's
// measured ticks per second.
type tpsClock struct {
	*clock.Wall
}

// FrameRate returns the actual TPS, or the wall clock's estimate before
// ebiten has measured one.
func (c tpsClock) FrameRate() float64 {
	if tps := ebiten.ActualTPS(); tps > 0 {
		return tps
	}
	return c.Wall.FrameRate()
}
