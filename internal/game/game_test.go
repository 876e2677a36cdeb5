package game

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/shmup/internal/clock"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/rng"
)

type countingCue struct {
	plays int
}

func (c *countingCue) Play() {
	c.plays++
}

type testSounds struct {
	laser, pop, hit, power countingCue
}

func (s *testSounds) Sounds() Sounds {
	return Sounds{Laser: &s.laser, Pop: &s.pop, PlayerHit: &s.hit, Power: &s.power}
}

type countingRenderer struct {
	calls int
}

func (r *countingRenderer) DrawImage(object.Image, object.DrawOp) { r.calls++ }

func (r *countingRenderer) FillRect(_, _, _, _ float64, _ color.RGBA) { r.calls++ }

func newTestGame(t *testing.T) (*Game, *clock.Manual, *testSounds) {
	t.Helper()
	c := clock.NewManual(60)
	env := &object.Env{Clock: c, Rand: rng.NewSeeded(3)}
	sounds := &testSounds{}
	g := New(config.Default(), env, Assets{}, sounds.Sounds(), log.New(io.Discard))
	return g, c, sounds
}

// startPlaying leaves the title screen and runs one gameplay frame.
func startPlaying(g *Game, c *clock.Manual) {
	g.Update(Input{Start: true})
	c.Step()
	g.Update(Input{})
}

// enemyShotAt places a shot of the first enemy ship at pos.
func enemyShotAt(t *testing.T, g *Game, pos mgl64.Vec3) {
	t.Helper()
	require.NotEmpty(t, g.waves[0].Children)
	sp := object.NewSprite()
	sp.Pos = pos
	sp.Birth = g.env.Now()
	sp.Lifespan = 3000
	g.waves[0].Children[0].Sys.Add(sp)
}

func TestNew(t *testing.T) {
	g, _, _ := newTestGame(t)

	assert.Equal(t, PhaseTitle, g.State.Phase)
	assert.Equal(t, 10, g.State.Lives)
	assert.Len(t, g.waves, 3)
	assert.Equal(t, mgl64.Vec3{187.5, 333.5, 0}, g.player.Pos)
	assert.Equal(t, 8.0, g.player.Rate)
	assert.InDelta(t, -1000, g.player.Velocity.Y(), 1e-9)
	assert.True(t, g.waves[1].Mirror)
	assert.Equal(t, object.PathEnemyLine, g.waves[2].Path)
}

func TestUpdate_TitleWaitsForStart(t *testing.T) {
	g, c, _ := newTestGame(t)

	g.Update(Input{Fire: true})
	assert.Equal(t, PhaseTitle, g.State.Phase)
	for _, w := range g.waves {
		assert.False(t, w.Started)
	}

	startPlaying(g, c)
	assert.Equal(t, PhasePlaying, g.State.Phase)
	for _, w := range g.waves {
		assert.True(t, w.Started)
		assert.Len(t, w.Children, 1)
		assert.Equal(t, g.player.Pos, w.Target)
	}
}

func TestUpdate_FireHeld(t *testing.T) {
	g, c, sounds := newTestGame(t)
	startPlaying(g, c)

	g.Update(Input{Fire: true})
	assert.True(t, g.player.Started)
	assert.Equal(t, 1, g.player.Sys.Len())
	assert.Equal(t, 1, sounds.laser.plays)

	c.Step()
	g.Update(Input{})
	assert.False(t, g.player.Started)
	assert.Equal(t, 1, sounds.laser.plays)
}

func TestUpdate_KeyboardMovementClamps(t *testing.T) {
	g, c, _ := newTestGame(t)
	startPlaying(g, c)

	g.Update(Input{Left: true, Up: true})
	assert.Equal(t, mgl64.Vec3{182.5, 328.5, 0}, g.player.Pos)

	g.player.Pos = mgl64.Vec3{20, 700, 0}
	g.Update(Input{Left: true, Down: true})
	assert.Equal(t, 25.0, g.player.Pos.X(), "snaps to the left edge")
	assert.Equal(t, 642.0, g.player.Pos.Y(), "snaps to the bottom edge")
}

func TestUpdate_DragMovementClamps(t *testing.T) {
	g, c, _ := newTestGame(t)
	startPlaying(g, c)

	g.Update(Input{DragX: 10, DragY: -20})
	assert.Equal(t, mgl64.Vec3{197.5, 313.5, 0}, g.player.Pos)

	g.Update(Input{DragX: 1000, DragY: -1000})
	assert.Equal(t, mgl64.Vec3{350, 25, 0}, g.player.Pos)
}

func TestCheckShots_DestroysEnemy(t *testing.T) {
	g, c, sounds := newTestGame(t)
	startPlaying(g, c)

	target := g.waves[0].Children[0].Pos
	shot := object.NewSprite()
	shot.Pos = target
	g.player.Sys.Add(shot)

	g.checkShots()

	assert.Equal(t, 1, g.State.Score)
	assert.Equal(t, 1, sounds.pop.plays)
	require.Len(t, g.blasts, 1)
	assert.Equal(t, target, g.blasts[0].Position)
	assert.False(t, g.waves[0].Children[0].Drawable)
	assert.Equal(t, 0.0, g.player.Sys.Sprites[0].Lifespan)

	g.checkShots()
	assert.Equal(t, 1, g.State.Score, "a destroyed ship cannot be hit again")
}

func TestCheckPlayer_EnemyShot(t *testing.T) {
	g, c, sounds := newTestGame(t)
	startPlaying(g, c)

	shots := g.waves[0].Children[0].Sys
	before := shots.Len()
	enemyShotAt(t, g, g.player.Pos.Add(mgl64.Vec3{10, 0, 0}))
	g.checkPlayer()

	assert.Equal(t, 9, g.State.Lives)
	assert.Equal(t, 1, sounds.hit.plays)
	assert.Len(t, g.blasts, 1)
	assert.Equal(t, before, shots.Len())
}

func TestCheckPlayer_EnemyShip(t *testing.T) {
	g, c, _ := newTestGame(t)
	startPlaying(g, c)

	g.player.Pos = g.waves[1].Children[0].Pos
	g.checkPlayer()

	assert.Equal(t, 9, g.State.Lives)
	assert.False(t, g.waves[1].Children[0].Drawable)
	assert.True(t, g.waves[0].Children[0].Drawable)
}

func TestUpdate_GameOverAndRestart(t *testing.T) {
	g, c, _ := newTestGame(t)
	startPlaying(g, c)
	g.State.Score = 4
	g.State.Lives = 1

	enemyShotAt(t, g, g.player.Pos)
	c.Step()
	g.Update(Input{})
	assert.Equal(t, PhaseOver, g.State.Phase)
	assert.Equal(t, 0, g.State.Lives)

	r := &countingRenderer{}
	g.Draw(r)
	assert.Zero(t, r.calls, "the field is hidden once the game is over")

	g.Update(Input{})
	assert.Equal(t, PhaseOver, g.State.Phase)

	g.Update(Input{Start: true})
	assert.Equal(t, PhasePlaying, g.State.Phase)
	assert.Equal(t, 0, g.State.Score)
	assert.Equal(t, 10, g.State.Lives)
	assert.Empty(t, g.blasts)
	for _, w := range g.waves {
		assert.Empty(t, w.Children)
	}
}

func TestUpdate_ShieldBlocksHitsUntilExpiry(t *testing.T) {
	g, c, sounds := newTestGame(t)
	startPlaying(g, c)

	g.power.Pos = g.player.Pos
	g.Update(Input{})
	require.True(t, g.Shielded())
	assert.True(t, g.power.Hidden)
	assert.Equal(t, 1, sounds.power.plays)

	enemyShotAt(t, g, g.player.Pos)
	g.Update(Input{})
	assert.Equal(t, 10, g.State.Lives, "shielded players take no hits")

	c.Advance(g.cfg.Player.PowerDuration)
	g.Update(Input{})
	assert.False(t, g.Shielded())
	assert.False(t, g.power.Hidden)
	assert.Equal(t, mgl64.Vec3{187.5, 1, 0}, g.power.Pos)
}

func TestUpdateBlasts_RetiresDrained(t *testing.T) {
	g, c, _ := newTestGame(t)

	g.spawnBlast(mgl64.Vec3{100, 100, 0})
	g.updateBlasts()
	require.Len(t, g.blasts, 1)
	assert.Equal(t, g.cfg.Explosion.GroupSize, g.blasts[0].Sys.Len())
	assert.True(t, g.blasts[0].impulse.Applied)

	c.Advance(g.cfg.Explosion.Lifespan*1000 + 1)
	g.updateBlasts()
	assert.Empty(t, g.blasts)
}

func TestTuning(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.SetFireRate(50)
	assert.Equal(t, 20.0, g.FireRate())
	g.SetFireRate(0)
	assert.Equal(t, 1.0, g.player.Rate)

	g.SetFireDirection(90)
	assert.InDelta(t, 1000, g.player.Velocity.X(), 1e-9)
	assert.InDelta(t, 0, g.player.Velocity.Y(), 1e-9)
	g.SetFireDirection(400)
	assert.Equal(t, 360.0, g.FireDirection())

	g.Update(Input{RateDelta: 5})
	assert.Equal(t, 1.0, g.FireRate(), "tuning is ignored while hidden")

	g.Update(Input{ToggleTuning: true, RateDelta: 5, AimDelta: -180})
	assert.True(t, g.State.ShowTuning)
	assert.Equal(t, 6.0, g.FireRate())
	assert.Equal(t, 180.0, g.FireDirection())
}

func TestDraw_Playing(t *testing.T) {
	g, c, _ := newTestGame(t)

	r := &countingRenderer{}
	g.Draw(r)
	assert.Zero(t, r.calls)

	startPlaying(g, c)
	for _, w := range g.waves {
		w.Children[0].Sys.Clear()
	}
	g.Draw(r)
	// Player, power-up and one ship per wave.
	assert.Equal(t, 5, r.calls)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "title", PhaseTitle.String())
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "over", PhaseOver.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
