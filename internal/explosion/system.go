package explosion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/physics"
)

// System owns a collection of debris and applies borrowed forces to it.
// Forces are never copied or released; the caller keeps them alive.
type System struct {
	Debris []Debris

	forces []Force
	env    *object.Env
}

// NewSystem creates an empty system.
func NewSystem(env *object.Env) *System {
	return &System{env: env}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.Debris)
}

// Add appends a particle.
func (s *System) Add(d Debris) {
	s.Debris = append(s.Debris, d)
}

// AddForce attaches a force. The system does not take ownership.
func (s *System) AddForce(f Force) {
	s.forces = append(s.forces, f)
}

// Forces returns the attached forces.
func (s *System) Forces() []Force {
	return s.forces
}

// Remove deletes the particle at index i. i must be in range.
func (s *System) Remove(i int) {
	s.Debris = append(s.Debris[:i], s.Debris[i+1:]...)
}

// Clear drops every particle. Forces stay attached.
func (s *System) Clear() {
	clear(s.Debris)
	s.Debris = s.Debris[:0]
}

// SetLifespan sets the lifespan of every live particle, in seconds.
func (s *System) SetLifespan(l float64) {
	for i := range s.Debris {
		s.Debris[i].Lifespan = l
	}
}

// Reset re-arms every apply-once force.
func (s *System) Reset() {
	for _, f := range s.forces {
		f.State().Applied = false
	}
}

// Update prunes expired particles, applies forces and integrates the rest.
func (s *System) Update() {
	if len(s.Debris) == 0 {
		return
	}

	now := s.env.Now()
	kept := s.Debris[:0]
	for _, d := range s.Debris {
		if !d.Expired(now) {
			kept = append(kept, d)
		}
	}
	clear(s.Debris[len(kept):])
	s.Debris = kept

	for i := range s.Debris {
		for _, f := range s.forces {
			if !f.State().Applied {
				f.UpdateForce(&s.Debris[i])
			}
		}
	}

	for _, f := range s.forces {
		if st := f.State(); st.ApplyOnce {
			st.Applied = true
		}
	}

	dt := 1 / s.env.FrameRate()
	for i := range s.Debris {
		s.Debris[i].Integrate(dt)
		s.Debris[i].fade()
	}
}

// RemoveNear removes every particle strictly closer than dist to point and
// returns how many were removed.
func (s *System) RemoveNear(point mgl64.Vec3, dist float64) int {
	kept := s.Debris[:0]
	for _, d := range s.Debris {
		if !physics.Within(d.Position, point, dist) {
			kept = append(kept, d)
		}
	}
	n := len(s.Debris) - len(kept)
	clear(s.Debris[len(kept):])
	s.Debris = kept
	return n
}

// Draw renders every particle.
func (s *System) Draw(r object.Renderer) {
	for i := range s.Debris {
		s.Debris[i].Draw(r)
	}
}
