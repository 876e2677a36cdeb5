package object

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Enemy emitters fire when a sample in [1, 1000) falls below this value,
// giving roughly a 0.4% chance per frame.
const enemyFireThreshold = 5

// Size of the shield aura drawn around a powered-up emitter.
const powerAuraSize = 60

// Emitter periodically spawns sprites into the sprite system it holds.
//
// A stopped emitter spawns nothing and only drains its remaining sprites.
// A started one-shot emitter fires one group and stops itself; a continuous
// one fires a group immediately and then whenever 1000/Rate ms of wall-clock
// time have passed since the last spawn.
type Emitter struct {
	Entity
	ID  uuid.UUID
	Sys *SpriteSystem

	Velocity    mgl64.Vec3 // Velocity given to spawned sprites
	Rate        float64    // Spawns per second
	Lifespan    float64    // Lifespan given to spawned sprites, ms
	GroupSize   int        // Sprites per spawn event
	OneShot     bool
	LastSpawned float64 // Ms

	Width, Height float64

	// Birth and Duration bound the life of an emitter spawned by a MamaEmitter.
	Birth, Duration float64
	// Amplitude and Cycles shape the wave paths of a MamaEmitter child.
	Amplitude, Cycles float64

	ChildImage Image
	Image      Image
	PowerImage Image
	Sound      Cue

	Enemy     bool // Fire by per-frame chance instead of fixed cadence
	Drawable  bool
	HasPower  bool
	PowerTime float64 // Ms when the power-up was collected
	Started   bool

	fired   bool // A spawn happened since the last Start
	ownsSys bool
	env     *Env
}

// NewEmitter creates a stopped emitter. A nil sys gives the emitter its own
// sprite system; a non-nil one is borrowed and never released by the emitter.
func NewEmitter(env *Env, sys *SpriteSystem) *Emitter {
	owns := sys == nil
	if owns {
		sys = NewSpriteSystem(env)
	}
	return &Emitter{
		Entity:    NewEntity(),
		ID:        uuid.New(),
		Sys:       sys,
		Velocity:  mgl64.Vec3{100, 100, 0},
		Rate:      1,
		Lifespan:  3000,
		GroupSize: 1,
		Width:     50,
		Height:    50,
		Amplitude: 75,
		Cycles:    2,
		Drawable:  true,
		ownsSys:   owns,
		env:       env,
	}
}

// OwnsSystem reports whether the emitter created its sprite system.
func (e *Emitter) OwnsSystem() bool {
	return e.ownsSys
}

// Start arms the emitter. The next Update spawns immediately.
func (e *Emitter) Start() {
	e.Started = true
	e.LastSpawned = e.env.Now()
}

// Stop disarms the emitter and clears the fired flag so a later Start fires again.
func (e *Emitter) Stop() {
	e.Started = false
	e.fired = false
}

// Age returns milliseconds since Birth.
func (e *Emitter) Age() float64 {
	return e.env.Now() - e.Birth
}

// MaxDistPerFrame returns how far a spawned sprite travels in one frame.
func (e *Emitter) MaxDistPerFrame() float64 {
	return e.Velocity.Len() / e.env.FrameRate()
}

// Update spawns sprites according to the emitter's mode and advances its system.
func (e *Emitter) Update() {
	if !e.Started {
		if e.Sys.Len() > 0 {
			e.Sys.Update()
		}
		return
	}

	now := e.env.Now()
	switch {
	case e.Enemy:
		if e.env.Rand.Range(1, 1000) < enemyFireThreshold {
			e.spawn(now, 1)
		}
	case e.OneShot:
		if !e.fired {
			e.spawn(now, e.groupSize())
		}
		e.Stop()
	default:
		if !e.fired || now-e.LastSpawned > 1000/e.Rate {
			e.spawn(now, e.groupSize())
			if e.Sound != nil {
				e.Sound.Play()
			}
		}
	}

	e.Sys.Update()
}

func (e *Emitter) groupSize() int {
	if e.GroupSize < 1 {
		return 1
	}
	return e.GroupSize
}

// spawn adds n sprites born at now and stamps the spawn time.
func (e *Emitter) spawn(now float64, n int) {
	for range n {
		sp := NewSprite()
		if e.ChildImage != nil {
			sp.SetImage(e.ChildImage)
		}
		sp.Velocity = e.Velocity
		sp.Lifespan = e.Lifespan
		sp.Pos = e.Pos
		sp.Birth = now
		e.Sys.Add(sp)
	}
	e.LastSpawned = now
	e.fired = true
}

// Clone returns an independent copy with a fresh identity, fresh spawn
// timers and its own empty sprite system. Nothing mutable is shared with e.
func (e *Emitter) Clone() Emitter {
	c := *e
	c.ID = uuid.New()
	c.Sys = NewSpriteSystem(e.env)
	c.Sys.Path = e.Sys.Path
	c.ownsSys = true
	c.fired = false
	c.LastSpawned = e.env.Now()
	return c
}

// Release drops the sprites of an owned system.
func (e *Emitter) Release() {
	if e.ownsSys {
		e.Sys.Clear()
	}
}

// Draw renders the emitter (when drawable) and then its sprites.
func (e *Emitter) Draw(r Renderer) {
	if e.Drawable {
		switch {
		case e.Image != nil:
			if e.HasPower && e.PowerImage != nil {
				r.DrawImage(e.PowerImage, DrawOp{
					X:        e.Pos.X(),
					Y:        e.Pos.Y(),
					Width:    powerAuraSize,
					Height:   powerAuraSize,
					Rotation: e.Rot,
					Alpha:    1,
				})
			}
			w, h := imageSize(e.Image, e.Width, e.Height)
			r.DrawImage(e.Image, DrawOp{
				X:        e.Pos.X(),
				Y:        e.Pos.Y(),
				Width:    w,
				Height:   h,
				Rotation: e.Rot,
				Alpha:    1,
			})
		default:
			r.FillRect(e.Pos.X()-e.Width/2, e.Pos.Y()-e.Height/2, e.Width, e.Height, color.RGBA{B: 200, A: 255})
		}
	}

	e.Sys.Draw(r)
}
