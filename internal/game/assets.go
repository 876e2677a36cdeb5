package game

import "github.com/tomz197/shmup/internal/object"

// Assets are the image handles supplied by a frontend. Any of them may be nil,
// in which case entities draw placeholder rectangles.
type Assets struct {
	Ship      object.Image
	Shot      object.Image
	Enemy     object.Image
	EnemyShot object.Image
	Debris    object.Image
	Shield    object.Image
}

// Sounds are the cue handles supplied by a frontend. Nil cues are silent.
type Sounds struct {
	Laser     object.Cue
	Pop       object.Cue
	PlayerHit object.Cue
	Power     object.Cue
}

func play(c object.Cue) {
	if c != nil {
		c.Play()
	}
}
