package object

import (
	"image/color"

	"github.com/tomz197/shmup/internal/clock"
	"github.com/tomz197/shmup/internal/rng"
)

func newTestEnv(fps float64, rand rng.Source) (*Env, *clock.Manual) {
	c := clock.NewManual(fps)
	if rand == nil {
		rand = rng.NewSeeded(1)
	}
	return &Env{Clock: c, Rand: rand}, c
}

type testImage struct {
	w, h float64
}

func (i testImage) Size() (float64, float64) {
	return i.w, i.h
}

type rect struct {
	x, y, w, h float64
	c          color.RGBA
}

type recordRenderer struct {
	images []DrawOp
	rects  []rect
}

func (r *recordRenderer) DrawImage(_ Image, op DrawOp) {
	r.images = append(r.images, op)
}

func (r *recordRenderer) FillRect(x, y, w, h float64, c color.RGBA) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

type countingCue struct {
	plays int
}

func (c *countingCue) Play() {
	c.plays++
}
