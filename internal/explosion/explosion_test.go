package explosion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosion_OneShotBurst(t *testing.T) {
	env, c := newTestEnv(60, nil)
	e := NewExplosion(env)
	e.Position = mgl64.Vec3{40, 50, 0}
	e.Velocity = mgl64.Vec3{0, 300, 0}
	e.DebrisImage = testImage{}

	e.Update()
	assert.Equal(t, 0, e.Sys.Len(), "nothing fires before Start")
	assert.False(t, e.Done())

	c.Set(200)
	e.Start()
	e.Update()

	require.Equal(t, DefaultGroupSize, e.Sys.Len())
	assert.False(t, e.Started)
	assert.True(t, e.FiredOnce)
	for _, d := range e.Sys.Debris {
		assert.InDelta(t, 300*DefaultDamping, d.Velocity.Len(), 1e-6)
		assert.Equal(t, 200.0, d.Birth)
		assert.Equal(t, float64(DefaultLifespan), d.Lifespan)
		assert.InDelta(t, 40, d.Position.X(), 300.0/60+1e-9)
	}

	c.Step()
	e.Update()
	assert.Equal(t, DefaultGroupSize, e.Sys.Len(), "one group per start")
	assert.False(t, e.Done())

	c.Set(1201)
	e.Update()
	assert.Equal(t, 0, e.Sys.Len())
	assert.True(t, e.Done())
}

func TestExplosion_ContinuousCadence(t *testing.T) {
	env, c := newTestEnv(60, nil)
	e := NewExplosion(env)
	e.OneShot = false
	e.Rate = 2
	e.GroupSize = 3
	e.Lifespan = 10

	e.Start()
	e.Update()
	assert.Equal(t, 3, e.Sys.Len(), "first group fires immediately")

	c.Advance(500)
	e.Update()
	assert.Equal(t, 3, e.Sys.Len())

	c.Advance(1)
	e.Update()
	assert.Equal(t, 6, e.Sys.Len())
	assert.False(t, e.Done(), "a started explosion is never done")
}

func TestExplosion_BlastWithForces(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	e := NewExplosion(env)
	gravity := NewGravityForce(mgl64.Vec3{})
	impulse := NewImpulseRadialForce(env.Rand, 2000)
	e.Sys.AddForce(gravity)
	e.Sys.AddForce(impulse)
	e.Sys.Reset()
	e.Start()

	e.Update()
	for _, d := range e.Sys.Debris {
		assert.InDelta(t, 2000.0/60*DefaultDamping, d.Velocity.Len(), 1e-6)
	}
	assert.True(t, impulse.Applied)
	assert.False(t, gravity.Applied)
}

func TestExplosion_ReleaseRespectsOwnership(t *testing.T) {
	env, _ := newTestEnv(60, nil)

	owned := NewExplosion(env)
	owned.Start()
	owned.Update()
	require.True(t, owned.OwnsSystem())
	owned.Release()
	assert.Equal(t, 0, owned.Sys.Len())

	shared := NewSystem(env)
	borrowing := NewExplosionWithSystem(env, shared)
	borrowing.Start()
	borrowing.Update()
	assert.False(t, borrowing.OwnsSystem())
	borrowing.Release()
	assert.Equal(t, DefaultGroupSize, shared.Len())
}

func TestExplosion_DrawOnlyWhenVisible(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	e := NewExplosion(env)
	e.Start()
	e.Update()

	r := &recordRenderer{}
	e.Draw(r)
	assert.Equal(t, DefaultGroupSize, r.fills)

	e.Visible = false
	r = &recordRenderer{}
	e.Draw(r)
	assert.Zero(t, r.fills)
}
