// Package object implements the time-driven entities of the shooter: sprites,
// sprite systems, emitters, emitters of emitters and the power-up.
//
// Every entity advances in Update and renders in Draw. Update reads time from
// the Clock in its Env; nothing blocks and nothing returns errors.
package object

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/clock"
	"github.com/tomz197/shmup/internal/rng"
)

// Immortal is the lifespan value that never expires by age.
const Immortal = -1.0

// Env bundles the collaborators every entity reads from.
type Env struct {
	Clock clock.Clock
	Rand  rng.Source
}

// Now returns the current elapsed time in milliseconds.
func (e *Env) Now() float64 {
	return e.Clock.Millis()
}

// FrameRate returns the current frame rate, never <= 0.
func (e *Env) FrameRate() float64 {
	fps := e.Clock.FrameRate()
	if fps <= 0 {
		return clock.TargetFPS
	}
	return fps
}

// Image is an opaque renderable handle. The simulation stores and forwards
// images but only reads their size; each Renderer knows its own concrete type.
type Image interface {
	Size() (w, h float64)
}

// DrawOp describes one image placement.
type DrawOp struct {
	X, Y          float64 // Centre of the image in world coordinates
	Width, Height float64 // Destination size
	Rotation      float64 // Degrees, clockwise on screen
	Alpha         float64 // 0 (invisible) to 1 (opaque)
}

// Renderer draws images and placeholder rectangles.
type Renderer interface {
	DrawImage(img Image, op DrawOp)
	FillRect(x, y, w, h float64, c color.RGBA)
}

// Cue is a fire-and-forget audio trigger.
type Cue interface {
	Play()
}

// Entity is the positional record shared by every simulated object.
type Entity struct {
	Pos   mgl64.Vec3
	Scale mgl64.Vec3
	Rot   float64 // Degrees
}

// NewEntity returns an entity at the origin with unit scale.
func NewEntity() Entity {
	return Entity{Scale: mgl64.Vec3{1, 1, 1}}
}

// Object is a drawable and updatable simulation entity.
type Object interface {
	// Update advances the object by one frame.
	Update()

	// Draw renders the object's current state.
	Draw(r Renderer)
}

// imageSize returns the size of img, or the fallback size when img is nil.
func imageSize(img Image, fw, fh float64) (float64, float64) {
	if img == nil {
		return fw, fh
	}
	return img.Size()
}
