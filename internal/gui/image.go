package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/game"
)

// outlineWidth is the stroke width of unfilled shapes, in pixels.
const outlineWidth = 3

// Image is a pre-rendered sprite texture.
type Image struct {
	img  *ebiten.Image
	w, h float64
}

// Size returns the natural size of the image.
func (i *Image) Size() (float64, float64) {
	return i.w, i.h
}

// whiteImage is the source texture for solid triangles.
var whiteImage *ebiten.Image

func white() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// NewImage renders a vector shape into a texture of its natural size.
func NewImage(s *draw.Shape) *Image {
	w, h := s.Size()
	iw, ih := max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), 1)
	img := ebiten.NewImage(iw, ih)

	var path vector.Path
	for i, p := range s.Points {
		x, y := float32((p.X+0.5)*w), float32((p.Y+0.5)*h)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	var vs []ebiten.Vertex
	var is []uint16
	if s.Filled {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
	} else {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: outlineWidth})
	}
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(s.Color.R) / 255
		vs[i].ColorG = float32(s.Color.G) / 255
		vs[i].ColorB = float32(s.Color.B) / 255
		vs[i].ColorA = float32(s.Color.A) / 255
	}
	img.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	return &Image{img: img, w: w, h: h}
}

// Assets renders the textures of every game entity for a ship of the given size.
func Assets(size float64) game.Assets {
	return game.Assets{
		Ship:      NewImage(draw.Ship(size)),
		Shot:      NewImage(draw.Shot(size/5, size/2.5)),
		Enemy:     NewImage(draw.Enemy(size)),
		EnemyShot: NewImage(draw.EnemyShot(size * 0.3)),
		Debris:    NewImage(draw.Debris(size * 0.3)),
		Shield:    NewImage(draw.Shield(size)),
	}
}
