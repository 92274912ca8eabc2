package state

import "github.com/atomicstack/servarr-tui/internal/route"

// Grid is a cursor over the fields of a multi-field prompt. Rows may have
// different widths.
type Grid struct {
	blocks [][]route.Block
	x, y   int
}

// NewGrid returns a grid positioned on the first cell.
func NewGrid(blocks [][]route.Block) *Grid {
	rows := make([][]route.Block, 0, len(blocks))
	for _, row := range blocks {
		if len(row) == 0 {
			continue
		}
		rows = append(rows, append([]route.Block(nil), row...))
	}
	return &Grid{blocks: rows}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.blocks)
}

// Position returns the active column and row.
func (g *Grid) Position() (x, y int) {
	return g.x, g.y
}

// Active returns the block under the cursor, or route.None for an empty grid.
func (g *Grid) Active() route.Block {
	if len(g.blocks) == 0 {
		return route.None
	}
	return g.blocks[g.y][g.x]
}

// RowWidth returns the number of cells in the active row.
func (g *Grid) RowWidth() int {
	if len(g.blocks) == 0 {
		return 0
	}
	return len(g.blocks[g.y])
}

// Up moves to the previous row, wrapping to the last.
func (g *Grid) Up() {
	if len(g.blocks) == 0 {
		return
	}
	g.y = wrapUp(g.y, len(g.blocks))
	g.clampX()
}

// Down moves to the next row, wrapping to the first.
func (g *Grid) Down() {
	if len(g.blocks) == 0 {
		return
	}
	g.y = wrapDown(g.y, len(g.blocks))
	g.clampX()
}

// Left moves to the previous cell of the row, wrapping. It reports false on
// single-cell rows so the caller can apply the field's own left action.
func (g *Grid) Left() bool {
	if g.RowWidth() <= 1 {
		return false
	}
	g.x = wrapUp(g.x, g.RowWidth())
	return true
}

// Right moves to the next cell of the row, wrapping. It reports false on
// single-cell rows.
func (g *Grid) Right() bool {
	if g.RowWidth() <= 1 {
		return false
	}
	g.x = wrapDown(g.x, g.RowWidth())
	return true
}

// SetIndex moves the cursor to (x, y), clamped into the grid.
func (g *Grid) SetIndex(x, y int) {
	if len(g.blocks) == 0 {
		return
	}
	g.y = clamp(y, len(g.blocks))
	g.x = x
	g.clampX()
}

// Find moves the cursor to the first cell holding b and reports whether it
// exists.
func (g *Grid) Find(b route.Block) bool {
	for y, row := range g.blocks {
		for x, cell := range row {
			if cell == b {
				g.x, g.y = x, y
				return true
			}
		}
	}
	return false
}

func (g *Grid) clampX() {
	g.x = clamp(g.x, len(g.blocks[g.y]))
}
