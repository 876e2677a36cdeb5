package explosion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/physics"
	"github.com/tomz197/shmup/internal/rng"
)

// Force contributes to the force buffer of debris during a System update.
type Force interface {
	// UpdateForce adds this force's contribution to d.Forces.
	UpdateForce(d *Debris)

	// State exposes the apply-once bookkeeping shared by every force.
	State() *ForceState
}

// ForceState tracks whether a force applies only once and whether it already has.
// Embed it to implement Force.
type ForceState struct {
	ApplyOnce bool
	Applied   bool
}

// State returns s.
func (s *ForceState) State() *ForceState {
	return s
}

// GravityForce pulls every particle with Gravity * mass on every pass.
type GravityForce struct {
	ForceState
	Gravity mgl64.Vec3
}

// NewGravityForce creates a continuous gravity field.
func NewGravityForce(g mgl64.Vec3) *GravityForce {
	return &GravityForce{Gravity: g}
}

func (f *GravityForce) UpdateForce(d *Debris) {
	d.Forces = d.Forces.Add(f.Gravity.Mul(d.Mass))
}

// ImpulseRadialForce pushes each particle once with a fixed magnitude in an
// independently sampled random direction.
type ImpulseRadialForce struct {
	ForceState
	Magnitude float64

	rand rng.Source
}

// NewImpulseRadialForce creates an apply-once radial burst.
func NewImpulseRadialForce(rand rng.Source, magnitude float64) *ImpulseRadialForce {
	return &ImpulseRadialForce{
		ForceState: ForceState{ApplyOnce: true},
		Magnitude:  magnitude,
		rand:       rand,
	}
}

func (f *ImpulseRadialForce) UpdateForce(d *Debris) {
	dir := physics.RandomPlanarDirection(f.rand.Range)
	d.Forces = d.Forces.Add(dir.Mul(f.Magnitude))
}
