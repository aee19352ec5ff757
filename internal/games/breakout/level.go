// Package breakout implements the Breakout game logic: entity state, the
// input handler, the per-tick update step and the render step.
package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// Grid dimensions.
const (
	Rows = config.GridRows
	Cols = config.GridCols
)

// Brick is a single brick of the grid.
type Brick struct {
	Rect    core.Rect
	Visible bool
}

// Grid is the fixed brick layout, addressed [row][col].
type Grid [Rows][Cols]Brick

// NewGrid lays out a full grid of visible bricks.
// Cells are width/Cols x (height-reserved)/Rows pixels; each brick is inset
// by inset pixels on every side of its cell.
func NewGrid(width, height, reserved, inset int) Grid {
	var g Grid
	cellW := width / Cols
	cellH := (height - reserved) / Rows

	for row := range Rows {
		for col := range Cols {
			g[row][col] = Brick{
				Rect: core.NewRect(
					col*cellW+inset,
					row*cellH+inset,
					cellW-2*inset,
					cellH-2*inset,
				),
				Visible: true,
			}
		}
	}
	return g
}

// At returns the brick at (row, col).
func (g *Grid) At(row, col int) *Brick {
	return &g[row][col]
}

// CountVisible returns the number of bricks still on the field.
func (g *Grid) CountVisible() int {
	count := 0
	for row := range g {
		for col := range g[row] {
			if g[row][col].Visible {
				count++
			}
		}
	}
	return count
}
