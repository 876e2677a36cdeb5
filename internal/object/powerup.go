package object

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/physics"
)

// PowerUp tuning.
const (
	powerUpStartSpeed = 10   // Initial speed along the heading
	powerUpDamping    = 0.99 // Velocity kept per frame
	powerUpIdleSpeed  = 20   // At or below this speed the pickup dashes off again
	powerUpDashAccel  = 5000 // Acceleration of a dash
	powerUpJitter     = 90   // Max heading change per dash, degrees
	powerUpSize       = 50   // Drawn size
)

// PowerUp is a single physics-driven pickup that bounces off the field edges
// and dashes in a new direction whenever it slows down.
type PowerUp struct {
	Entity
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
	Heading      mgl64.Vec3
	Damping      float64
	Hidden       bool
	Image        Image

	// Bounds of the play field; the pickup bounces inside [0,W]x[0,H].
	BoundsW, BoundsH float64

	env *Env
}

// NewPowerUp creates a visible pickup at the top centre of a w x h field.
func NewPowerUp(env *Env, w, h float64) *PowerUp {
	p := &PowerUp{
		Entity:  NewEntity(),
		Damping: powerUpDamping,
		BoundsW: w,
		BoundsH: h,
		env:     env,
	}
	p.Reset()
	return p
}

// Reset restores the start position, heading and speed and makes the pickup visible.
func (p *PowerUp) Reset() {
	p.Pos = mgl64.Vec3{p.BoundsW / 2, 1, 0}
	p.Heading = mgl64.Vec3{0, 1, 0}
	p.Velocity = p.Heading.Mul(powerUpStartSpeed)
	p.Acceleration = mgl64.Vec3{}
	p.Hidden = false
}

// Integrate bounces off the edges, dashes when idle and steps the motion.
func (p *PowerUp) Integrate() {
	if p.Pos.X() <= 0 || p.Pos.X() >= p.BoundsW {
		p.Heading[0] = -p.Heading[0]
		p.Velocity[0] = -p.Velocity[0]
	}
	if p.Pos.Y() <= 0 || p.Pos.Y() >= p.BoundsH {
		p.Heading[1] = -p.Heading[1]
		p.Velocity[1] = -p.Velocity[1]
	}
	if p.Velocity.Len() <= powerUpIdleSpeed {
		p.Heading = physics.RotateZ(p.Heading, p.env.Rand.Range(-powerUpJitter, powerUpJitter))
		p.Acceleration = p.Heading.Mul(powerUpDashAccel)
	}

	dt := 1 / p.env.FrameRate()
	p.Pos = p.Pos.Add(p.Velocity.Mul(dt))
	p.Velocity = p.Velocity.Add(p.Acceleration.Mul(dt))
	p.Velocity = p.Velocity.Mul(p.Damping)
	p.Acceleration = mgl64.Vec3{}
}

// Update integrates the pickup while it is visible.
func (p *PowerUp) Update() {
	if !p.Hidden {
		p.Integrate()
	}
}

// MaxDistPerFrame returns how far the pickup moves in one frame.
func (p *PowerUp) MaxDistPerFrame() float64 {
	return p.Velocity.Len() / p.env.FrameRate()
}

// RemoveNear hides a visible pickup strictly closer than dist to point.
func (p *PowerUp) RemoveNear(point mgl64.Vec3, dist float64) bool {
	if !p.Hidden && physics.Within(p.Pos, point, dist) {
		p.Hidden = true
		return true
	}
	return false
}

// Draw renders the visible pickup.
func (p *PowerUp) Draw(r Renderer) {
	if p.Hidden {
		return
	}
	if p.Image == nil {
		r.FillRect(p.Pos.X()-5, p.Pos.Y()-5, 10, 10, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		return
	}
	r.DrawImage(p.Image, DrawOp{
		X:      p.Pos.X(),
		Y:      p.Pos.Y(),
		Width:  powerUpSize,
		Height: powerUpSize,
		Alpha:  1,
	})
}
