// Package game drives the shooter: it owns the player's emitter, the enemy
// waves, the power-up and the active blasts, and resolves collisions between
// them once per frame. It knows nothing about terminals or windows.
package game

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/explosion"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/physics"
)

// Enemy ships fire by chance, so their own cadence only matters for spawning
// the very first shot.
const enemyFireRate = 0.5

// Game is a single play session.
type Game struct {
	State State

	cfg    *config.Config
	env    *object.Env
	log    *log.Logger
	assets Assets
	sounds Sounds

	player *object.Emitter
	waves  []*object.MamaEmitter
	power  *object.PowerUp
	blasts []*blast
	scene  []object.Object

	fireRate      float64
	fireDirection float64

	// Limits of the player's centre.
	left, right, top, bottom float64
}

// blast is an explosion together with the forces its system borrows.
type blast struct {
	*explosion.Explosion
	gravity *explosion.GravityForce
	impulse *explosion.ImpulseRadialForce
}

// New creates a game on the title screen. cfg must be valid.
func New(cfg *config.Config, env *object.Env, assets Assets, sounds Sounds, logger *log.Logger) *Game {
	g := &Game{
		cfg:           cfg,
		env:           env,
		log:           logger,
		assets:        assets,
		sounds:        sounds,
		fireRate:      cfg.Player.FireRate,
		fireDirection: cfg.Player.FireDirection,
	}
	g.setup()
	return g
}

// setup builds a fresh field and resets score and lives.
func (g *Game) setup() {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	size := g.cfg.Player.Size

	for _, b := range g.blasts {
		b.Release()
	}
	g.blasts = nil
	for _, wave := range g.waves {
		wave.Release()
	}

	p := object.NewEmitter(g.env, nil)
	p.Pos = mgl64.Vec3{w / 2, h / 2, 0}
	p.Width, p.Height = size, size
	p.Lifespan = g.cfg.Player.ShotLifespan
	p.Image = g.assets.Ship
	p.ChildImage = g.assets.Shot
	p.PowerImage = g.assets.Shield
	p.Sound = g.sounds.Laser
	g.player = p
	g.SetFireRate(g.fireRate)
	g.SetFireDirection(g.fireDirection)

	g.left, g.right = size/2, w-size/2
	g.top, g.bottom = size/2, h-size/2

	g.waves = g.waves[:0]
	for _, wc := range g.cfg.Waves {
		g.waves = append(g.waves, g.newWave(wc))
	}

	g.power = object.NewPowerUp(g.env, w, h)
	g.power.Image = g.assets.Shield

	g.State.Score = 0
	g.State.Lives = g.cfg.Player.Lives
	g.log.Debug("field ready", "waves", len(g.waves), "width", w, "height", h)
}

// newWave builds a spawner of enemy ships from its config.
func (g *Game) newWave(wc config.WaveConfig) *object.MamaEmitter {
	path, err := object.ParsePath(wc.Path)
	if err != nil {
		// Validated config never gets here.
		g.log.Warn("unknown wave path, using default", "wave", wc.Name, "err", err)
	}

	x := wc.X * g.cfg.Window.Width
	proto := object.NewEmitter(g.env, nil)
	proto.Pos = mgl64.Vec3{x, 0, 0}
	proto.Velocity = mgl64.Vec3{0, g.cfg.Enemy.ShotSpeed, 0}
	proto.Lifespan = g.cfg.Enemy.ShotLifespan
	proto.Rate = enemyFireRate
	proto.Image = g.assets.Enemy
	proto.ChildImage = g.assets.EnemyShot
	proto.Enemy = true

	m := object.NewMamaEmitter(g.env, proto, path, g.cfg.Window.Height)
	m.Pos = proto.Pos
	m.Velocity = mgl64.Vec3{0, wc.Speed, 0}
	m.Rate = wc.Rate
	m.Mirror = wc.Mirror
	m.AimSpeed = g.cfg.Enemy.ShotSpeed
	m.ChildDuration = g.cfg.Enemy.ChildDuration
	return m
}

// Update advances the game by one frame.
func (g *Game) Update(in Input) {
	if in.ToggleTuning {
		g.State.ShowTuning = !g.State.ShowTuning
	}
	if g.State.ShowTuning {
		if in.RateDelta != 0 {
			g.SetFireRate(g.fireRate + in.RateDelta)
		}
		if in.AimDelta != 0 {
			g.SetFireDirection(g.fireDirection + in.AimDelta)
		}
	}

	switch g.State.Phase {
	case PhaseTitle:
		if in.Start {
			g.State.Phase = PhasePlaying
			g.log.Info("game started", "lives", g.State.Lives)
		}
	case PhasePlaying:
		g.play(in)
	case PhaseOver:
		if in.Start {
			g.setup()
			g.State.Phase = PhasePlaying
			g.log.Info("game restarted")
		}
	}
}

// play runs one frame of active gameplay.
func (g *Game) play(in Input) {
	for _, wave := range g.waves {
		if !wave.Started {
			wave.Start()
		}
		wave.Target = g.player.Pos
		wave.Update()
	}

	if in.Fire {
		if !g.player.Started {
			g.player.Start()
		}
	} else {
		g.player.Stop()
	}

	g.move(in)
	g.power.Update()
	g.player.Update()

	g.checkPower()
	if !g.player.HasPower {
		g.checkPlayer()
	} else if g.env.Now()-g.player.PowerTime >= g.cfg.Player.PowerDuration {
		g.player.HasPower = false
		g.power.Reset()
		g.log.Debug("shield expired")
	}
	g.checkShots()
	g.updateBlasts()

	if g.State.Lives <= 0 {
		g.State.Lives = 0
		g.State.Phase = PhaseOver
		g.log.Info("game over", "score", g.State.Score)
	}
}

// move applies held keys and pointer drags to the player, keeping it on the field.
func (g *Game) move(in Input) {
	step := g.cfg.Player.MoveStep
	p := &g.player.Pos

	if in.Left {
		if p.X() <= g.left {
			p[0] = g.left
		} else {
			p[0] -= step
		}
	}
	if in.Right {
		if p.X() >= g.right {
			p[0] = g.right
		} else {
			p[0] += step
		}
	}
	if in.Up {
		if p.Y() <= g.top {
			p[1] = g.top
		} else {
			p[1] -= step
		}
	}
	if in.Down {
		if p.Y() >= g.bottom {
			p[1] = g.bottom
		} else {
			p[1] += step
		}
	}

	if in.DragX != 0 || in.DragY != 0 {
		p[0] = mgl64.Clamp(p.X()+in.DragX, g.left, g.right)
		p[1] = mgl64.Clamp(p.Y()+in.DragY, g.top, g.bottom)
	}
}

// SetFireRate sets the player's shots per second, clamped to the tuning range.
func (g *Game) SetFireRate(rate float64) {
	g.fireRate = mgl64.Clamp(rate, config.MinFireRate, config.MaxFireRate)
	g.player.Rate = g.fireRate
}

// SetFireDirection turns the player's shots deg degrees clockwise from
// straight up, clamped to the tuning range.
func (g *Game) SetFireDirection(deg float64) {
	g.fireDirection = mgl64.Clamp(deg, 0, config.MaxFireDirection)
	up := mgl64.Vec3{0, -g.cfg.Player.ShotSpeed, 0}
	g.player.Velocity = physics.RotateZ(up, g.fireDirection)
}

// FireRate returns the player's shots per second.
func (g *Game) FireRate() float64 {
	return g.fireRate
}

// FireDirection returns the player's fire direction in degrees.
func (g *Game) FireDirection() float64 {
	return g.fireDirection
}

// Shielded reports whether the player is protected by a power-up.
func (g *Game) Shielded() bool {
	return g.player.HasPower
}

// Draw renders the field. Screens and text are up to the frontend.
func (g *Game) Draw(r object.Renderer) {
	if g.State.Phase != PhasePlaying {
		return
	}
	for _, o := range g.objects() {
		o.Draw(r)
	}
}

// objects lists everything on the field in draw order.
func (g *Game) objects() []object.Object {
	g.scene = append(g.scene[:0], g.player, g.power)
	for _, wave := range g.waves {
		g.scene = append(g.scene, wave)
	}
	for _, b := range g.blasts {
		g.scene = append(g.scene, b)
	}
	return g.scene
}
