package render

import (
	"math"

	"github.com/lixenwraith/square-shooter/constants"
	"github.com/lixenwraith/square-shooter/sim"
)

// Viewport maps terminal cells to world units.
// Rows [0, HUDRows) hold the status line; the arena starts below them.
type Viewport struct {
	cols, rows   int
	cellW, cellH float64
}

// NewViewport creates a viewport for a cols x rows terminal
func NewViewport(cols, rows int, cellW, cellH float64) *Viewport {
	return &Viewport{cols: cols, rows: rows, cellW: cellW, cellH: cellH}
}

// Resize updates the terminal dimensions
func (v *Viewport) Resize(cols, rows int) {
	v.cols, v.rows = cols, rows
}

// Size returns the terminal dimensions in cells
func (v *Viewport) Size() (cols, rows int) {
	return v.cols, v.rows
}

// Arena returns the world bounds covered by the arena rows
func (v *Viewport) Arena() sim.Arena {
	rows := max(v.rows-constants.HUDRows, 0)
	cols := max(v.cols, 0)
	return sim.Arena{
		Width:  float64(cols) * v.cellW,
		Height: float64(rows) * v.cellH,
	}
}

// WorldToCell returns the screen cell containing world point p
func (v *Viewport) WorldToCell(p sim.Vec) (col, row int) {
	col = int(math.Floor(p.X / v.cellW))
	row = int(math.Floor(p.Y/v.cellH)) + constants.HUDRows
	return col, row
}

// CellToWorld returns the world point at the center of a screen cell
func (v *Viewport) CellToWorld(col, row int) sim.Vec {
	return sim.Vec{
		X: (float64(col) + 0.5) * v.cellW,
		Y: (float64(row-constants.HUDRows) + 0.5) * v.cellH,
	}
}

// InArena reports whether a cell lies inside the arena rows
func (v *Viewport) InArena(col, row int) bool {
	return col >= 0 && col < v.cols && row >= constants.HUDRows && row < v.rows
}

// RectCells returns the inclusive cell span covered by r
func (v *Viewport) RectCells(r sim.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.WorldToCell(sim.Vec{X: r.X, Y: r.Y})
	c1 = int(math.Ceil((r.X+r.W)/v.cellW)) - 1
	r1 = int(math.Ceil((r.Y+r.H)/v.cellH)) - 1 + constants.HUDRows
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}
