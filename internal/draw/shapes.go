package draw

import (
	"image/color"
	"math"
)

// Shape is a vector image: a polygon outline in unit space, centred on the
// origin with y pointing down, scaled to the destination size when drawn.
type Shape struct {
	Points        []Point
	Width, Height float64 // Natural size
	Color         color.RGBA
	Filled        bool
}

// Size returns the natural size of the shape.
func (s *Shape) Size() (float64, float64) {
	return s.Width, s.Height
}

// Palette.
var (
	ColorShip      = color.RGBA{R: 220, G: 220, B: 255, A: 255}
	ColorShot      = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	ColorEnemy     = color.RGBA{R: 255, G: 70, B: 70, A: 255}
	ColorEnemyShot = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	ColorDebris    = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	ColorShield    = color.RGBA{R: 80, G: 220, B: 255, A: 255}
)

// Ship is the player's arrowhead, pointing up.
func Ship(size float64) *Shape {
	return &Shape{
		Points: []Point{{0, -0.5}, {0.5, 0.5}, {0, 0.25}, {-0.5, 0.5}},
		Width:  size,
		Height: size,
		Color:  ColorShip,
		Filled: true,
	}
}

// Shot is a player projectile.
func Shot(w, h float64) *Shape {
	return &Shape{
		Points: rect(),
		Width:  w,
		Height: h,
		Color:  ColorShot,
		Filled: true,
	}
}

// Enemy is an enemy ship, pointing up so its rotation faces the target.
func Enemy(size float64) *Shape {
	return &Shape{
		Points: []Point{{0, -0.5}, {0.5, 0}, {0.3, 0.5}, {0, 0.3}, {-0.3, 0.5}, {-0.5, 0}},
		Width:  size,
		Height: size,
		Color:  ColorEnemy,
		Filled: true,
	}
}

// EnemyShot is an enemy projectile.
func EnemyShot(size float64) *Shape {
	return &Shape{
		Points: []Point{{0, -0.5}, {0.5, 0}, {0, 0.5}, {-0.5, 0}},
		Width:  size,
		Height: size,
		Color:  ColorEnemyShot,
		Filled: true,
	}
}

// Debris is an explosion fragment.
func Debris(size float64) *Shape {
	return &Shape{
		Points: []Point{{-0.5, -0.2}, {0.3, -0.5}, {0.5, 0.4}, {-0.2, 0.5}},
		Width:  size,
		Height: size,
		Color:  ColorDebris,
		Filled: true,
	}
}

// Shield is the power-up and the aura around a shielded ship.
func Shield(size float64) *Shape {
	return &Shape{
		Points: regularPolygon(8),
		Width:  size,
		Height: size,
		Color:  ColorShield,
	}
}

func rect() []Point {
	return []Point{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
}

// regularPolygon returns n points on a circle of diameter 1.
func regularPolygon(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: 0.5 * math.Cos(a), Y: 0.5 * math.Sin(a)}
	}
	return pts
}
