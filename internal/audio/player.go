package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/game"
	"github.com/tomz197/shmup/internal/object"
)

// Player mixes cues into the system speaker.
// Cues played before Init or after Close are dropped.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	ready  bool
	log    *log.Logger
}

// NewPlayer creates a player for cfg. Call Init before playing.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		log:    logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.log.Debug("audio ready", "sampleRate", int(p.rate))
	return nil
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// Play starts a fresh instance of sound k.
func (p *Player) Play(k Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(Streamer(k, p.rate), p.volume))
	speaker.Unlock()
}

// Cue returns a handle that plays k through p.
func (p *Player) Cue(k Kind) object.Cue {
	return cue{p: p, kind: k}
}

// Sounds returns the game's cues played through p.
func (p *Player) Sounds() game.Sounds {
	return game.Sounds{
		Laser:     p.Cue(Laser),
		Pop:       p.Cue(Pop),
		PlayerHit: p.Cue(PlayerHit),
		Power:     p.Cue(Power),
	}
}

type cue struct {
	p    *Player
	kind Kind
}

func (c cue) Play() {
	c.p.Play(c.kind)
}

// Silent is a cue that does nothing.
var Silent object.Cue = silent{}

type silent struct{}

func (silent) Play() {}
