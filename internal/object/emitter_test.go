package object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/shmup/internal/rng"
)

func TestEmitter_OneShotFiresGroupAndStops(t *testing.T) {
	env, c := newTestEnv(60, nil)
	e := NewEmitter(env, nil)
	e.OneShot = true
	e.GroupSize = 5
	e.Lifespan = Immortal

	e.Start()
	e.Update()
	assert.Equal(t, 5, e.Sys.Len())
	assert.False(t, e.Started)

	for range 10 {
		c.Step()
		e.Update()
	}
	assert.Equal(t, 5, e.Sys.Len(), "a one-shot emitter fires once per start")

	e.Start()
	e.Update()
	assert.Equal(t, 10, e.Sys.Len(), "restarting fires again")
}

func TestEmitter_ContinuousRateEndToEnd(t *testing.T) {
	for _, fps := range []float64{30, 60, 120} {
		env, c := newTestEnv(fps, nil)
		cue := &countingCue{}
		e := NewEmitter(env, nil)
		e.Rate = 8
		e.Velocity = mgl64.Vec3{0, -1000, 0}
		e.Lifespan = 2000
		e.Sound = cue

		e.Start()
		for c.Millis() <= 1100+1e-6 {
			e.Update()
			c.Step()
		}

		want := int(math.Floor(1.1*8)) + 1
		assert.Equal(t, want, cue.plays, "spawns at %v fps", fps)
		assert.Equal(t, want, e.Sys.Len(), "sprites alive at %v fps", fps)
	}
}

func TestEmitter_SpawnedSpritesInheritSettings(t *testing.T) {
	env, c := newTestEnv(60, nil)
	e := NewEmitter(env, nil)
	e.Pos = mgl64.Vec3{30, 40, 0}
	e.Velocity = mgl64.Vec3{0, -600, 0}
	e.Lifespan = 1234
	e.ChildImage = testImage{10, 20}

	c.Set(500)
	e.Start()
	e.Update()

	require.Equal(t, 1, e.Sys.Len())
	s := e.Sys.Sprites[0]
	assert.Equal(t, 500.0, s.Birth)
	assert.Equal(t, 1234.0, s.Lifespan)
	assert.Equal(t, mgl64.Vec3{0, -600, 0}, s.Velocity)
	assert.Equal(t, 10.0, s.Width)
	// Spawned at the emitter, then moved by one frame.
	assert.InDelta(t, 30.0, s.Pos.X(), 1e-9)
	assert.InDelta(t, 40.0-10.0, s.Pos.Y(), 1e-9)
	assert.Equal(t, 500.0, e.LastSpawned)
}

func TestEmitter_StoppedOnlyDrains(t *testing.T) {
	env, c := newTestEnv(60, nil)
	e := NewEmitter(env, nil)
	e.Lifespan = 100
	e.Start()
	e.Update()
	require.Equal(t, 1, e.Sys.Len())

	e.Stop()
	c.Advance(50)
	e.Update()
	assert.Equal(t, 1, e.Sys.Len())

	c.Advance(5000)
	e.Update()
	e.Update()
	assert.Equal(t, 0, e.Sys.Len())
}

func TestEmitter_RestartSpawnsImmediately(t *testing.T) {
	env, c := newTestEnv(60, nil)
	e := NewEmitter(env, nil)
	e.Rate = 1
	e.Lifespan = Immortal

	e.Start()
	e.Update()
	c.Advance(10)
	e.Update()
	assert.Equal(t, 1, e.Sys.Len())

	e.Stop()
	e.Start()
	e.Update()
	assert.Equal(t, 2, e.Sys.Len())
}

func TestEmitter_EnemyFiresByChance(t *testing.T) {
	seq := rng.NewSequence(500, 999, 2)
	env, _ := newTestEnv(60, seq)
	cue := &countingCue{}
	e := NewEmitter(env, nil)
	e.Enemy = true
	e.Rate = 1000
	e.Sound = cue
	e.Lifespan = Immortal

	e.Start()
	e.Update()
	e.Update()
	assert.Equal(t, 0, e.Sys.Len(), "cadence does not apply to enemies")
	e.Update()
	assert.Equal(t, 1, e.Sys.Len())
	assert.Equal(t, 0, cue.plays, "enemy fire is silent")
}

func TestEmitter_CloneIsIndependent(t *testing.T) {
	env, c := newTestEnv(60, nil)
	proto := NewEmitter(env, nil)
	proto.Pos = mgl64.Vec3{1, 2, 0}
	proto.Start()
	proto.Update()
	require.Equal(t, 1, proto.Sys.Len())

	c.Advance(100)
	clone := proto.Clone()
	assert.NotEqual(t, proto.ID, clone.ID)
	assert.NotSame(t, proto.Sys, clone.Sys)
	assert.True(t, clone.OwnsSystem())
	assert.Equal(t, 0, clone.Sys.Len())
	assert.Equal(t, 100.0, clone.LastSpawned)

	clone.Pos = mgl64.Vec3{9, 9, 0}
	clone.Update()
	assert.Equal(t, mgl64.Vec3{1, 2, 0}, proto.Pos)
	assert.Equal(t, 1, proto.Sys.Len())
	assert.Equal(t, 1, clone.Sys.Len(), "a fresh clone fires on its first update")
}

func TestEmitter_ReleaseRespectsOwnership(t *testing.T) {
	env, _ := newTestEnv(60, nil)

	owned := NewEmitter(env, nil)
	owned.Sys.Add(NewSprite())
	owned.Release()
	assert.Equal(t, 0, owned.Sys.Len())

	shared := NewSpriteSystem(env)
	shared.Add(NewSprite())
	borrowing := NewEmitter(env, shared)
	assert.False(t, borrowing.OwnsSystem())
	borrowing.Release()
	assert.Equal(t, 1, shared.Len())
}

func TestEmitter_AgeAndMaxDistPerFrame(t *testing.T) {
	env, c := newTestEnv(50, nil)
	e := NewEmitter(env, nil)
	e.Velocity = mgl64.Vec3{0, -1000, 0}
	e.Birth = 200
	c.Set(450)

	assert.Equal(t, 250.0, e.Age())
	assert.InDelta(t, 20.0, e.MaxDistPerFrame(), 1e-9)
}

func TestEmitter_Draw(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	e := NewEmitter(env, nil)
	e.Pos = mgl64.Vec3{50, 50, 0}
	e.Sys.Add(NewSprite())

	r := &recordRenderer{}
	e.Draw(r)
	assert.Len(t, r.rects, 2, "placeholder box plus the sprite")

	e.Image = testImage{30, 40}
	e.PowerImage = testImage{1, 1}
	e.HasPower = true
	e.Rot = 45
	r = &recordRenderer{}
	e.Draw(r)
	require.Len(t, r.images, 2)
	assert.Equal(t, 60.0, r.images[0].Width, "power aura first")
	assert.Equal(t, DrawOp{X: 50, Y: 50, Width: 30, Height: 40, Rotation: 45, Alpha: 1}, r.images[1])

	e.Drawable = false
	r = &recordRenderer{}
	e.Draw(r)
	assert.Empty(t, r.images)
	assert.Len(t, r.rects, 1, "hidden emitters still draw their sprites")
}
