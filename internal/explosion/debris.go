// Package explosion implements the physically integrated debris particles
// used for destruction effects, the forces acting on them and the Explosion
// emitter that spawns them.
package explosion

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/object"
)

// Debris defaults.
const (
	DefaultDebrisLifespan = 5   // Seconds
	DefaultDamping        = .99 // Velocity kept per integration step
	defaultDebrisSize     = 15
	alphaFade             = 5 // Alpha lost per update pass
)

// Debris is a single explosion particle.
type Debris struct {
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
	Forces       mgl64.Vec3 // Accumulated for the current step, cleared by Integrate

	Damping  float64
	Mass     float64
	Lifespan float64 // Seconds, or object.Immortal
	Radius   float64
	Birth    float64 // Ms

	Width, Height float64
	Alpha         float64 // 0..255
	Spin          int     // Quarter turns applied so far
	Image         object.Image
}

// NewDebris returns a resting particle with default mass, damping and lifespan.
func NewDebris() Debris {
	return Debris{
		Damping:  DefaultDamping,
		Mass:     1,
		Lifespan: DefaultDebrisLifespan,
		Radius:   .1,
		Width:    defaultDebrisSize,
		Height:   defaultDebrisSize,
		Alpha:    255,
	}
}

// SetImage assigns an image and adopts its size.
func (d *Debris) SetImage(img object.Image) {
	d.Image = img
	if img != nil {
		d.Width, d.Height = img.Size()
	}
}

// Age returns the particle's age in seconds at time now (ms).
func (d *Debris) Age(now float64) float64 {
	return (now - d.Birth) / 1000
}

// Expired reports whether a mortal particle has outlived its lifespan.
func (d *Debris) Expired(now float64) bool {
	return d.Lifespan != object.Immortal && d.Age(now) > d.Lifespan
}

// Integrate advances the particle by dt seconds and clears the force buffer.
func (d *Debris) Integrate(dt float64) {
	mass := d.Mass
	if mass == 0 {
		mass = 1
	}
	accel := d.Acceleration.Add(d.Forces.Mul(1 / mass))
	d.Velocity = d.Velocity.Add(accel.Mul(dt))
	d.Position = d.Position.Add(d.Velocity.Mul(dt))
	d.Velocity = d.Velocity.Mul(d.Damping)
	d.Forces = mgl64.Vec3{}
}

// fade lowers alpha and turns the particle a quarter turn.
func (d *Debris) fade() {
	d.Alpha = max(d.Alpha-alphaFade, 0)
	d.Spin = (d.Spin + 1) % 4
}

// Draw renders the particle centred on its position.
func (d *Debris) Draw(r object.Renderer) {
	if d.Image == nil {
		r.FillRect(d.Position.X()-d.Width/2, d.Position.Y()-d.Height/2, d.Width, d.Height,
			color.RGBA{R: 255, G: 140, A: uint8(d.Alpha)})
		return
	}
	r.DrawImage(d.Image, object.DrawOp{
		X:        d.Position.X(),
		Y:        d.Position.Y(),
		Width:    d.Width,
		Height:   d.Height,
		Rotation: float64(d.Spin * 90),
		Alpha:    d.Alpha / 255,
	})
}
