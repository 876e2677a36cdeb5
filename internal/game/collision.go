package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/explosion"
)

// checkShots destroys enemy ships hit by the player's shots.
func (g *Game) checkShots() {
	reach := g.player.MaxDistPerFrame()
	for i := range g.player.Sys.Sprites {
		s := &g.player.Sys.Sprites[i]
		for _, wave := range g.waves {
			if wave.RemoveNear(s.Pos, reach) {
				play(g.sounds.Pop)
				g.spawnBlast(s.Pos)
				s.Lifespan = 0
				g.State.Score++
				g.log.Debug("enemy destroyed", "score", g.State.Score)
			}
		}
	}
}

// checkPlayer resolves enemy ships and enemy shots reaching the player.
func (g *Game) checkPlayer() {
	pos := g.player.Pos
	half := g.player.Width / 2

	for _, wave := range g.waves {
		if wave.RemoveNear(pos, wave.MaxDistPerFrame()+half) {
			g.hitPlayer("ship")
		}
		for i := range wave.Children {
			c := &wave.Children[i]
			if c.Sys.RemoveNear(pos, c.MaxDistPerFrame()+half) {
				g.hitPlayer("shot")
			}
		}
	}
}

func (g *Game) hitPlayer(by string) {
	play(g.sounds.PlayerHit)
	g.State.Lives--
	g.spawnBlast(g.player.Pos)
	g.log.Debug("player hit", "by", by, "lives", g.State.Lives)
}

// checkPower hands the shield to the player on pickup.
func (g *Game) checkPower() {
	reach := g.power.MaxDistPerFrame() + g.player.Width/2
	if g.power.RemoveNear(g.player.Pos, reach) {
		play(g.sounds.Power)
		g.player.HasPower = true
		g.player.PowerTime = g.env.Now()
		g.log.Debug("shield picked up")
	}
}

// spawnBlast starts a one-shot explosion at pos.
func (g *Game) spawnBlast(pos mgl64.Vec3) {
	ec := g.cfg.Explosion
	b := &blast{
		Explosion: explosion.NewExplosion(g.env),
		gravity:   explosion.NewGravityForce(mgl64.Vec3{0, ec.Gravity, 0}),
		impulse:   explosion.NewImpulseRadialForce(g.env.Rand, ec.Impulse),
	}
	b.Position = pos
	b.DebrisImage = g.assets.Debris
	b.GroupSize = ec.GroupSize
	b.Lifespan = ec.Lifespan
	b.Sys.AddForce(b.gravity)
	b.Sys.AddForce(b.impulse)
	b.Sys.Reset()
	b.Start()
	g.blasts = append(g.blasts, b)
}

// updateBlasts advances every blast and retires the drained ones.
func (g *Game) updateBlasts() {
	kept := g.blasts[:0]
	for _, b := range g.blasts {
		b.Update()
		if b.Done() {
			b.Release()
			continue
		}
		kept = append(kept, b)
	}
	clear(g.blasts[len(kept):])
	g.blasts = kept
}
