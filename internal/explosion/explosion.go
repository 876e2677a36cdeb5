package explosion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/physics"
)

// Explosion defaults.
const (
	DefaultGroupSize = 10
	DefaultLifespan  = 1 // Seconds, given to spawned debris
)

// Explosion is an emitter of debris. A one-shot explosion fires a single
// group per Start; a continuous one fires immediately and then every
// 1000/Rate ms while started.
type Explosion struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3 // Only the magnitude is used; directions are random
	Scale    mgl64.Vec3
	Rotation float64

	Rate           float64 // Groups per second
	Lifespan       float64 // Seconds
	LastSpawned    float64 // Ms
	ParticleRadius float64
	Radius         float64
	GroupSize      int

	OneShot   bool
	FiredOnce bool
	Started   bool
	Visible   bool

	DebrisImage object.Image
	Sys         *System

	fired   bool
	ownsSys bool
	env     *object.Env
}

// NewExplosion creates a stopped one-shot explosion with its own system.
func NewExplosion(env *object.Env) *Explosion {
	return newExplosion(env, NewSystem(env), true)
}

// NewExplosionWithSystem creates a stopped one-shot explosion that spawns
// into sys. The system is borrowed and never released by the explosion.
func NewExplosionWithSystem(env *object.Env, sys *System) *Explosion {
	return newExplosion(env, sys, false)
}

func newExplosion(env *object.Env, sys *System, owns bool) *Explosion {
	return &Explosion{
		Scale:          mgl64.Vec3{1, 1, 1},
		Rate:           1,
		Lifespan:       DefaultLifespan,
		ParticleRadius: 1,
		Radius:         1,
		GroupSize:      DefaultGroupSize,
		OneShot:        true,
		Visible:        true,
		Sys:            sys,
		ownsSys:        owns,
		env:            env,
	}
}

// OwnsSystem reports whether the explosion created its system.
func (e *Explosion) OwnsSystem() bool {
	return e.ownsSys
}

// Start arms the explosion. The next Update fires.
func (e *Explosion) Start() {
	e.Started = true
	e.LastSpawned = e.env.Now()
}

// Stop disarms the explosion so a later Start fires again.
func (e *Explosion) Stop() {
	e.Started = false
	e.fired = false
}

// Done reports whether the explosion has fired, stopped and fully drained.
func (e *Explosion) Done() bool {
	return e.FiredOnce && !e.Started && e.Sys.Len() == 0
}

// Update fires according to the explosion's mode and advances its system.
func (e *Explosion) Update() {
	now := e.env.Now()

	switch {
	case !e.Started:
	case e.OneShot:
		if !e.fired {
			e.spawnGroup(now)
		}
		e.Stop()
	default:
		if !e.fired || now-e.LastSpawned > 1000/e.Rate {
			e.spawnGroup(now)
		}
	}

	e.Sys.Update()
}

func (e *Explosion) spawnGroup(now float64) {
	for range max(e.GroupSize, 1) {
		e.spawn(now)
	}
	e.LastSpawned = now
	e.fired = true
	e.FiredOnce = true
}

// spawn adds one particle moving outwards in a random direction.
func (e *Explosion) spawn(now float64) {
	d := NewDebris()
	dir := physics.RandomPlanarDirection(e.env.Rand.Range)
	d.Velocity = dir.Mul(e.Velocity.Len())
	d.Position = e.Position
	d.Lifespan = e.Lifespan
	d.Birth = now
	d.Radius = e.ParticleRadius
	if e.DebrisImage != nil {
		d.SetImage(e.DebrisImage)
	}
	e.Sys.Add(d)
}

// Release drops the particles of an owned system.
func (e *Explosion) Release() {
	if e.ownsSys {
		e.Sys.Clear()
	}
}

// Draw renders the debris of a visible explosion.
func (e *Explosion) Draw(r object.Renderer) {
	if e.Visible {
		e.Sys.Draw(r)
	}
}
