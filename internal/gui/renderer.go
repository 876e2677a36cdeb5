package gui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/shmup/internal/object"
)

// screenRenderer draws simulation entities onto an ebiten image.
type screenRenderer struct {
	dst *ebiten.Image
	op  ebiten.DrawImageOptions
}

// DrawImage draws a texture centred on op.X, op.Y, scaled to the destination
// size, rotated and faded.
func (r *screenRenderer) DrawImage(img object.Image, op object.DrawOp) {
	im, ok := img.(*Image)
	if !ok || im.w <= 0 || im.h <= 0 {
		r.FillRect(op.X-op.Width/2, op.Y-op.Height/2, op.Width, op.Height, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		return
	}

	r.op.GeoM.Reset()
	r.op.GeoM.Translate(-im.w/2, -im.h/2)
	r.op.GeoM.Scale(op.Width/im.w, op.Height/im.h)
	r.op.GeoM.Rotate(mgl64.DegToRad(op.Rotation))
	r.op.GeoM.Translate(op.X, op.Y)
	r.op.ColorScale.Reset()
	r.op.ColorScale.ScaleAlpha(float32(op.Alpha))
	r.dst.DrawImage(im.img, &r.op)
}

// FillRect fills an axis-aligned box.
func (r *screenRenderer) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

var _ object.Renderer = (*screenRenderer)(nil)
