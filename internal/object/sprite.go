package object

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/shmup/internal/physics"
)

// Path selects the movement rule of a system.
type Path int

const (
	PathDefault   Path = iota // Linear motion along velocity
	PathEnemyWave             // Sine curve around the spawner's x
	PathEnemyLine             // Triangle-like curve around the spawner's x
)

// String returns the config name of the path.
func (p Path) String() string {
	switch p {
	case PathEnemyWave:
		return "wave"
	case PathEnemyLine:
		return "line"
	default:
		return "default"
	}
}

// ParsePath converts a config name into a Path.
func ParsePath(name string) (Path, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return PathDefault, nil
	case "wave":
		return PathEnemyWave, nil
	case "line":
		return PathEnemyLine, nil
	}
	return PathDefault, fmt.Errorf("unknown path %q", name)
}

// Sprite is a timed, linearly moving visual entity.
type Sprite struct {
	Entity
	Velocity mgl64.Vec3 // Pixels per second
	Speed    float64    // Pixels per second
	Birth    float64    // Elapsed time in ms
	Lifespan float64    // Ms, or Immortal

	Width, Height float64
	Name          string
	Image         Image
}

// NewSprite returns an immortal, unnamed sprite with the placeholder size.
func NewSprite() Sprite {
	return Sprite{
		Entity:   NewEntity(),
		Lifespan: Immortal,
		Width:    60,
		Height:   80,
		Name:     "UnnamedSprite",
	}
}

// SetImage assigns an image and adopts its size.
func (s *Sprite) SetImage(img Image) {
	s.Image = img
	if img != nil {
		s.Width, s.Height = img.Size()
	}
}

// Age returns the sprite's age in milliseconds at time now.
func (s *Sprite) Age(now float64) float64 {
	return now - s.Birth
}

// Expired reports whether a mortal sprite has outlived its lifespan.
func (s *Sprite) Expired(now float64) bool {
	return s.Lifespan != Immortal && s.Age(now) > s.Lifespan
}

// Draw renders the sprite centred on its position, or a red box without an image.
func (s *Sprite) Draw(r Renderer) {
	if s.Image == nil {
		r.FillRect(s.Pos.X()-s.Width/2, s.Pos.Y()-s.Height/2, s.Width, s.Height, color.RGBA{R: 255, A: 255})
		return
	}
	r.DrawImage(s.Image, DrawOp{
		X:      s.Pos.X(),
		Y:      s.Pos.Y(),
		Width:  s.Width,
		Height: s.Height,
		Alpha:  1,
	})
}

// SpriteSystem owns a collection of sprites and advances them each frame.
type SpriteSystem struct {
	Sprites []Sprite
	Path    Path

	env *Env
}

// NewSpriteSystem creates an empty system using linear motion.
func NewSpriteSystem(env *Env) *SpriteSystem {
	return &SpriteSystem{env: env}
}

// Len returns the number of live sprites.
func (s *SpriteSystem) Len() int {
	return len(s.Sprites)
}

// Add appends a sprite.
func (s *SpriteSystem) Add(sp Sprite) {
	s.Sprites = append(s.Sprites, sp)
}

// Remove deletes the sprite at index i. i must be in range.
func (s *SpriteSystem) Remove(i int) {
	s.Sprites = append(s.Sprites[:i], s.Sprites[i+1:]...)
}

// Clear drops every sprite.
func (s *SpriteSystem) Clear() {
	clear(s.Sprites)
	s.Sprites = s.Sprites[:0]
}

// Update removes expired sprites and moves the survivors.
func (s *SpriteSystem) Update() {
	if len(s.Sprites) == 0 {
		return
	}

	now := s.env.Now()
	kept := s.Sprites[:0]
	for _, sp := range s.Sprites {
		if !sp.Expired(now) {
			kept = append(kept, sp)
		}
	}
	clear(s.Sprites[len(kept):])
	s.Sprites = kept

	// Wave paths only apply to emitters; sprites either move linearly or not at all.
	if s.Path != PathDefault {
		return
	}
	fps := s.env.FrameRate()
	for i := range s.Sprites {
		sp := &s.Sprites[i]
		sp.Pos = sp.Pos.Add(sp.Velocity.Mul(1 / fps))
	}
}

// RemoveNear removes the first sprite strictly closer than dist to point.
// Returns true if a sprite was removed.
func (s *SpriteSystem) RemoveNear(point mgl64.Vec3, dist float64) bool {
	for i := range s.Sprites {
		if physics.Within(s.Sprites[i].Pos, point, dist) {
			s.Remove(i)
			return true
		}
	}
	return false
}

// Draw renders every sprite.
func (s *SpriteSystem) Draw(r Renderer) {
	for i := range s.Sprites {
		s.Sprites[i].Draw(r)
	}
}
