package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/shmup/internal/rng"
)

func TestPowerUp_Reset(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	p := NewPowerUp(env, 375, 667)

	assert.Equal(t, mgl64.Vec3{187.5, 1, 0}, p.Pos)
	assert.Equal(t, mgl64.Vec3{0, 10, 0}, p.Velocity)
	assert.False(t, p.Hidden)

	p.Pos = mgl64.Vec3{3, 3, 0}
	p.Hidden = true
	p.Reset()
	assert.Equal(t, mgl64.Vec3{187.5, 1, 0}, p.Pos)
	assert.False(t, p.Hidden)
}

func TestPowerUp_DashesWhenIdle(t *testing.T) {
	env, _ := newTestEnv(60, rng.NewSequence(0))
	p := NewPowerUp(env, 375, 667)

	p.Update()

	assert.InDelta(t, 1+10.0/60, p.Pos.Y(), 1e-9, "position moves before velocity")
	assert.InDelta(t, (10+5000.0/60)*0.99, p.Velocity.Y(), 1e-9)
	assert.InDelta(t, 0, p.Velocity.X(), 1e-9)
	assert.Equal(t, mgl64.Vec3{}, p.Acceleration)
}

func TestPowerUp_BouncesOffEdges(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	p := NewPowerUp(env, 375, 667)
	p.Pos = mgl64.Vec3{0, 100, 0}
	p.Velocity = mgl64.Vec3{-30, 0, 0}
	p.Heading = mgl64.Vec3{-1, 0, 0}

	p.Update()

	assert.InDelta(t, 0.5, p.Pos.X(), 1e-9)
	assert.InDelta(t, 29.7, p.Velocity.X(), 1e-9)
	assert.Equal(t, 1.0, p.Heading.X())

	p.Pos = mgl64.Vec3{100, 667, 0}
	p.Velocity = mgl64.Vec3{0, 60, 0}
	p.Heading = mgl64.Vec3{0, 1, 0}
	p.Update()
	assert.InDelta(t, 666, p.Pos.Y(), 1e-9)
	assert.Less(t, p.Velocity.Y(), 0.0)
}

func TestPowerUp_HiddenDoesNotMove(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	p := NewPowerUp(env, 375, 667)
	p.Hidden = true
	before := p.Pos

	p.Update()
	assert.Equal(t, before, p.Pos)

	r := &recordRenderer{}
	p.Draw(r)
	assert.Empty(t, r.rects)
	assert.Empty(t, r.images)
}

func TestPowerUp_RemoveNearOnce(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	p := NewPowerUp(env, 375, 667)

	assert.False(t, p.RemoveNear(mgl64.Vec3{0, 600, 0}, 30))
	require.True(t, p.RemoveNear(mgl64.Vec3{190, 5, 0}, 30))
	assert.True(t, p.Hidden)
	assert.False(t, p.RemoveNear(mgl64.Vec3{190, 5, 0}, 30))
}

func TestPowerUp_MaxDistPerFrame(t *testing.T) {
	env, _ := newTestEnv(50, nil)
	p := NewPowerUp(env, 375, 667)
	assert.InDelta(t, 0.2, p.MaxDistPerFrame(), 1e-9)
}

func TestPowerUp_Draw(t *testing.T) {
	env, _ := newTestEnv(60, nil)
	p := NewPowerUp(env, 200, 400)

	r := &recordRenderer{}
	p.Draw(r)
	require.Len(t, r.rects, 1)
	assert.Equal(t, 95.0, r.rects[0].x)
	assert.Equal(t, 10.0, r.rects[0].w)

	p.Image = testImage{8, 8}
	r = &recordRenderer{}
	p.Draw(r)
	require.Len(t, r.images, 1)
	assert.Equal(t, DrawOp{X: 100, Y: 1, Width: 50, Height: 50, Alpha: 1}, r.images[0])
}
