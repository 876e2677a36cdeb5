package draw

import (
	"image/color"
	"math"

	"github.com/tomz197/shmup/internal/object"
)

// minVisibleAlpha is the opacity below which nothing is drawn.
const minVisibleAlpha = 0.05

// Renderer draws simulation entities onto a Canvas.
// Images must be *Shape; anything else is drawn as a grey box.
type Renderer struct {
	Canvas *Canvas

	points []Point
}

// NewRenderer creates a renderer targeting c.
func NewRenderer(c *Canvas) *Renderer {
	return &Renderer{Canvas: c}
}

// DrawImage draws a shape scaled, rotated and faded as op describes.
func (r *Renderer) DrawImage(img object.Image, op object.DrawOp) {
	if op.Alpha < minVisibleAlpha {
		return
	}

	s, ok := img.(*Shape)
	if !ok {
		r.FillRect(op.X-op.Width/2, op.Y-op.Height/2, op.Width, op.Height,
			color.RGBA{R: 128, G: 128, B: 128, A: uint8(255 * min(op.Alpha, 1))})
		return
	}

	sin, cos := math.Sincos(op.Rotation * math.Pi / 180)
	r.points = r.points[:0]
	for _, p := range s.Points {
		x, y := p.X*op.Width, p.Y*op.Height
		r.points = append(r.points, Point{
			X: op.X + x*cos - y*sin,
			Y: op.Y + x*sin + y*cos,
		})
	}
	r.Canvas.DrawPolygon(r.points, fade(s.Color, op.Alpha), s.Filled)
}

// FillRect fills a box, dimming it by the color's alpha.
func (r *Renderer) FillRect(x, y, w, h float64, c color.RGBA) {
	a := float64(c.A) / 255
	if a < minVisibleAlpha {
		return
	}
	r.Canvas.FillRect(x, y, w, h, fade(c, a))
}

// fade darkens c towards black by alpha and makes it opaque, since terminal
// cells cannot blend.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		c.A = 255
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: 255,
	}
}

var _ object.Renderer = (*Renderer)(nil)
