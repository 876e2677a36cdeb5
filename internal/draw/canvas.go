package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x], alpha 0 is empty

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the canvas (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal cells the canvas covers.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// At returns the pixel at actual coordinates, or transparent when out of range.
func (c *Canvas) At(x, y int) color.RGBA {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return color.RGBA{}
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col color.RGBA) {
	c.setPixel(int(math.Floor(x*c.scaleX)), int(math.Floor(y*c.scaleY)), col)
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
// Rectangles smaller than a pixel still cover the pixel at their centre.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX))-1, x0)
	y1 := max(int(math.Ceil((y+h)*c.scaleY))-1, y0)

	x0, x1 = max(x0, 0), min(x1, c.termWidth-1)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight-1)
	for py := y0; py <= y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px <= x1; px++ {
			row[px] = col
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col color.RGBA) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon given in logical coordinates.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, col color.RGBA, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, col)
	}

	n := len(points)
	for i := range n {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col color.RGBA) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := range n {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		slices.Sort(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
// Empty cells are skipped; the caller clears the screen first.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 24)

	for row := range c.termHeight {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := range c.termWidth {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top.A == 0 && bottom.A == 0 {
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			switch {
			case top.A != 0 && bottom.A != 0 && top == bottom:
				writeFg(&c.renderBuf, top)
				c.renderBuf.WriteRune(BlockFull)
			case top.A != 0 && bottom.A != 0:
				writeFg(&c.renderBuf, top)
				writeBg(&c.renderBuf, bottom)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case top.A != 0:
				writeFg(&c.renderBuf, top)
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				writeFg(&c.renderBuf, bottom)
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString(ansiReset)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

const ansiReset = "\033[0m"

func writeFg(b *strings.Builder, c color.RGBA) {
	fmt.Fprintf(b, "\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func writeBg(b *strings.Builder, c color.RGBA) {
	fmt.Fprintf(b, "\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// RenderBorder draws a box around the canvas when it is offset from the
// terminal edges.
func (c *Canvas) RenderBorder(w io.Writer) {
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)
	fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
	fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
	for row := top + 1; row < bottom; row++ {
		fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
	}
	io.WriteString(w, buf.String())
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row) relative to the canvas.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
