// Package draw renders the game to a terminal using half-block characters,
// giving each character cell two vertically stacked colored pixels.
package draw

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Viewport is the terminal area a canvas occupies.
type Viewport struct {
	Cols, Rows           int // Canvas size in terminal cells
	OffsetCol, OffsetRow int // Cells skipped to center the canvas
}

// Fit returns the largest viewport inside a termWidth x termHeight terminal
// that shows a logicalWidth x logicalHeight field with square pixels.
// One reserved row at the top is left for the HUD.
func Fit(termWidth, termHeight int, logicalWidth, logicalHeight float64) Viewport {
	rows := termHeight - 1
	if termWidth <= 0 || rows <= 0 || logicalWidth <= 0 || logicalHeight <= 0 {
		return Viewport{Cols: max(termWidth, 1), Rows: max(rows, 1)}
	}

	// A half-block pixel is about as wide as it is tall.
	scale := math.Min(float64(termWidth)/logicalWidth, float64(rows*2)/logicalHeight)
	cols := min(max(int(logicalWidth*scale), 1), termWidth)
	rowsUsed := min(max(int(math.Ceil(logicalHeight*scale/2)), 1), rows)
	return Viewport{
		Cols:      cols,
		Rows:      rowsUsed,
		OffsetCol: (termWidth - cols) / 2,
		OffsetRow: 1 + (rows-rowsUsed)/2,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
