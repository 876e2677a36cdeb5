// Package clock provides the time sources the simulation runs on.
//
// All spawn cadence and age checks read elapsed wall-clock milliseconds, while
// movement and integration divide by the current frame rate. Both come from a
// Clock so tests can drive the simulation deterministically.
package clock

import "time"

// TargetFPS is the frame rate reported until a real one has been measured.
const TargetFPS = 60.0

// fpsSmoothing is the weight of the newest sample in the frame rate average.
const fpsSmoothing = 0.1

// Clock reports elapsed time and the current frame rate.
type Clock interface {
	// Millis returns monotonic elapsed time in milliseconds.
	Millis() float64
	// FrameRate returns the current frames per second. Never <= 0.
	FrameRate() float64
}

// Wall is a Clock backed by real time. Tick must be called once per frame
// for FrameRate to follow the actual loop speed.
type Wall struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	fps   float64
}

// NewWall creates a wall clock starting at zero elapsed time.
func NewWall() *Wall {
	return newWallWith(time.Now)
}

func newWallWith(now func() time.Time) *Wall {
	t := now()
	return &Wall{
		now:   now,
		start: t,
		last:  t,
		fps:   TargetFPS,
	}
}

// Tick records a frame boundary and updates the smoothed frame rate.
func (w *Wall) Tick() {
	t := w.now()
	dt := t.Sub(w.last).Seconds()
	w.last = t
	if dt <= 0 {
		return
	}
	w.fps += (1/dt - w.fps) * fpsSmoothing
}

// Millis returns milliseconds elapsed since the clock was created.
func (w *Wall) Millis() float64 {
	return float64(w.now().Sub(w.start)) / float64(time.Millisecond)
}

// FrameRate returns the smoothed frame rate.
func (w *Wall) FrameRate() float64 {
	if w.fps <= 0 {
		return TargetFPS
	}
	return w.fps
}

// Manual is a Clock whose time only moves when told to.
// Used by tests and headless simulations.
type Manual struct {
	ms  float64
	fps float64
}

// NewManual creates a manual clock at time zero running at fps.
func NewManual(fps float64) *Manual {
	m := &Manual{}
	m.SetFrameRate(fps)
	return m
}

// Advance moves time forward by ms milliseconds.
func (m *Manual) Advance(ms float64) {
	m.ms += ms
}

// Step advances exactly one frame at the current frame rate.
func (m *Manual) Step() {
	m.ms += 1000 / m.fps
}

// Set jumps to an absolute time in milliseconds.
func (m *Manual) Set(ms float64) {
	m.ms = ms
}

// SetFrameRate changes the reported frame rate. Values <= 0 reset it to TargetFPS.
func (m *Manual) SetFrameRate(fps float64) {
	if fps <= 0 {
		fps = TargetFPS
	}
	m.fps = fps
}

// Millis returns the current manual time.
func (m *Manual) Millis() float64 {
	return m.ms
}

// FrameRate returns the configured frame rate.
func (m *Manual) FrameRate() float64 {
	return m.fps
}
