package explosion

import (
	"image/color"

	"github.com/tomz197/shmup/internal/clock"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/rng"
)

func newTestEnv(fps float64, rand rng.Source) (*object.Env, *clock.Manual) {
	c := clock.NewManual(fps)
	if rand == nil {
		rand = rng.NewSeeded(7)
	}
	return &object.Env{Clock: c, Rand: rand}, c
}

type testImage struct{}

func (testImage) Size() (float64, float64) { return 15, 15 }

type recordRenderer struct {
	images []object.DrawOp
	fills  int
}

func (r *recordRenderer) DrawImage(_ object.Image, op object.DrawOp) {
	r.images = append(r.images, op)
}

func (r *recordRenderer) FillRect(_, _, _, _ float64, _ color.RGBA) {
	r.fills++
}

func restingDebris() Debris {
	d := NewDebris()
	d.Damping = 1
	d.Lifespan = object.Immortal
	return d
}
