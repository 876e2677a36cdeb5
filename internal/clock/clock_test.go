package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_StepAdvancesOneFrame(t *testing.T) {
	m := NewManual(50)
	m.Step()
	m.Step()
	assert.InDelta(t, 40.0, m.Millis(), 1e-9)
	assert.Equal(t, 50.0, m.FrameRate())
}

func TestManual_InvalidFrameRateFallsBack(t *testing.T) {
	m := NewManual(0)
	assert.Equal(t, TargetFPS, m.FrameRate())
	m.SetFrameRate(-3)
	assert.Equal(t, TargetFPS, m.FrameRate())
}

func TestWall_MillisAndFrameRate(t *testing.T) {
	base := time.Unix(100, 0)
	cur := base
	w := newWallWith(func() time.Time { return cur })

	assert.Equal(t, 0.0, w.Millis())
	assert.Equal(t, TargetFPS, w.FrameRate())

	// Many 10ms frames pull the average towards 100 fps.
	for range 200 {
		cur = cur.Add(10 * time.Millisecond)
		w.Tick()
	}
	assert.InDelta(t, 100.0, w.FrameRate(), 0.5)
	assert.InDelta(t, 2000.0, w.Millis(), 1e-6)
}

func TestWall_ZeroDeltaTickIgnored(t *testing.T) {
	base := time.Unix(100, 0)
	w := newWallWith(func() time.Time { return base })
	w.Tick()
	assert.Equal(t, TargetFPS, w.FrameRate())
}
