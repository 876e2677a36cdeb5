package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/physics"
)

// Defaults for emitters spawned by a MamaEmitter.
const (
	DefaultChildDuration = 8000 // Ms a spawned emitter lives
	DefaultAimSpeed      = 100  // Speed of sprites fired at the target
	lineCycleOffset      = 10   // Extra cycles applied to the line path
)

// Fleet variation: every fleetShuffle spawns the prototype's wave shape is
// randomized, and at fleetReset it is widened and the count restarts.
const (
	fleetShuffle = 15
	fleetReset   = 30
)

// MamaEmitter spawns independent copies of a prototype Emitter and moves them
// along a parametric path, turning each one to face Target every frame.
type MamaEmitter struct {
	Emitter
	Prototype *Emitter
	Children  []Emitter

	Target        mgl64.Vec3 // Usually the player position
	Path          Path
	Mirror        bool    // Flip the wave horizontally
	AimSpeed      float64 // Speed of children's sprites towards Target
	ChildDuration float64 // Ms
	FieldHeight   float64 // Height of the play field, scales wave period

	fleet int
}

// NewMamaEmitter creates a stopped spawner of prototype copies.
func NewMamaEmitter(env *Env, prototype *Emitter, path Path, fieldHeight float64) *MamaEmitter {
	if fieldHeight <= 0 {
		fieldHeight = 1
	}
	return &MamaEmitter{
		Emitter:       *NewEmitter(env, nil),
		Prototype:     prototype,
		Path:          path,
		AimSpeed:      DefaultAimSpeed,
		ChildDuration: DefaultChildDuration,
		FieldHeight:   fieldHeight,
	}
}

// Update spawns children on cadence, prunes finished ones and moves the rest.
func (m *MamaEmitter) Update() {
	if !m.Started {
		if len(m.Children) > 0 {
			m.move()
		}
		return
	}

	m.pruneDestroyed()

	now := m.env.Now()
	if !m.fired || now-m.LastSpawned > 1000/m.Rate {
		m.spawnChild(now)
		m.LastSpawned = now
		m.fired = true
	}

	m.move()
	m.aim()
}

// spawnChild appends a fresh copy of the prototype born at now.
func (m *MamaEmitter) spawnChild(now float64) {
	if m.Prototype == nil {
		return
	}

	switch m.fleet {
	case fleetShuffle:
		m.Prototype.Amplitude = m.env.Rand.Range(35, 50)
		m.Prototype.Cycles = m.env.Rand.Range(10, 15)
	case fleetReset:
		m.Prototype.Amplitude = m.env.Rand.Range(60, 75)
		m.Prototype.Cycles = 2
		m.fleet = 0
	}

	child := m.Prototype.Clone()
	child.Birth = now
	child.Duration = m.ChildDuration
	if !child.Started {
		child.Start()
	}
	m.Children = append(m.Children, child)
	m.fleet++
}

// pruneDestroyed drops children that were hit once their last sprites are gone.
func (m *MamaEmitter) pruneDestroyed() {
	kept := m.Children[:0]
	for _, c := range m.Children {
		if !c.Drawable && c.Sys.Len() == 0 {
			continue
		}
		kept = append(kept, c)
	}
	clear(m.Children[len(kept):])
	m.Children = kept
}

// move prunes children past their duration, updates the rest and moves them
// along the path.
func (m *MamaEmitter) move() {
	if len(m.Children) == 0 {
		return
	}

	kept := m.Children[:0]
	for _, c := range m.Children {
		if c.Age() > c.Duration {
			c.Release()
			continue
		}
		kept = append(kept, c)
	}
	clear(m.Children[len(kept):])
	m.Children = kept

	fps := m.env.FrameRate()
	for i := range m.Children {
		c := &m.Children[i]
		c.Update()

		switch m.Path {
		case PathEnemyWave:
			y := c.Pos.Y() + m.Velocity.Y()/fps
			c.Pos = SineWave(m.Pos.X(), y, c.Amplitude, c.Cycles, m.FieldHeight, m.Mirror)
		case PathEnemyLine:
			y := c.Pos.Y() + m.Velocity.Y()/fps
			c.Pos = TriangleWave(m.Pos.X(), y, c.Amplitude, c.Cycles+lineCycleOffset, m.FieldHeight, m.Mirror)
		default:
			c.Pos = c.Pos.Add(m.Velocity.Mul(1 / fps))
		}
	}
}

// aim turns every child towards Target and points its fire at it.
func (m *MamaEmitter) aim() {
	for i := range m.Children {
		c := &m.Children[i]
		dir, ok := physics.SafeNormalize(m.Target.Sub(c.Pos))
		if !ok {
			continue
		}
		c.Rot = mgl64.RadToDeg(physics.OrientedAngle(physics.Up, dir))
		c.Velocity = dir.Mul(m.AimSpeed)
	}
}

// RemoveNear hides and stops the first drawable child strictly closer than
// dist to point. The child stays in the list until its sprites have drained.
func (m *MamaEmitter) RemoveNear(point mgl64.Vec3, dist float64) bool {
	for i := range m.Children {
		c := &m.Children[i]
		if c.Drawable && physics.Within(c.Pos, point, dist) {
			c.Drawable = false
			c.Stop()
			return true
		}
	}
	return false
}

// Release drops every child and the spawner's own sprites.
func (m *MamaEmitter) Release() {
	for i := range m.Children {
		m.Children[i].Release()
	}
	clear(m.Children)
	m.Children = m.Children[:0]
	m.Emitter.Release()
}

// Draw renders every child and its sprites.
func (m *MamaEmitter) Draw(r Renderer) {
	for i := range m.Children {
		m.Children[i].Draw(r)
	}
}

// SineWave places a point at height y on a sine curve of the given amplitude
// around x0. cycles sets how many half periods fit in fieldHeight.
func SineWave(x0, y, amplitude, cycles, fieldHeight float64, mirror bool) mgl64.Vec3 {
	u := cycles * y * math.Pi / fieldHeight
	if mirror {
		u = -u
	}
	return mgl64.Vec3{-amplitude*math.Sin(u) + x0, y, 0}
}

// TriangleWave places a point at height y on a triangle-like curve of the
// given amplitude around x0.
func TriangleWave(x0, y, amplitude, cycles, fieldHeight float64, mirror bool) mgl64.Vec3 {
	u := math.Cos(cycles * y / fieldHeight)
	if mirror {
		u = -u
	}
	return mgl64.Vec3{-amplitude*(math.Asin(u)/(math.Pi/2)) + x0, y, 0}
}
