package animation

import (
	"tinygo.org/x/drivers"
)

const (
	GridRows = 8
	GridCols = 16
)

// Grid is a fixed block grid covering the display. A 128x64 panel gives 8x8 pixel cells.
type Grid struct {
	cells [GridRows][GridCols]bool
	lit   int
}

// Reset turns every cell off.
func (g *Grid) Reset() {
	g.cells = [GridRows][GridCols]bool{}
	g.lit = 0
}

// Light turns a cell on and reports whether it was previously off.
func (g *Grid) Light(row, col int) bool {
	if g.cells[row][col] {
		return false
	}
	g.cells[row][col] = true
	g.lit++
	return true
}

// Set forces a cell to the given state.
func (g *Grid) Set(row, col int, on bool) {
	if g.cells[row][col] == on {
		return
	}
	g.cells[row][col] = on
	if on {
		g.lit++
	} else {
		g.lit--
	}
}

func (g *Grid) At(row, col int) bool { return g.cells[row][col] }

// Lit returns the number of cells that are on.
func (g *Grid) Lit() int { return g.lit }

// Full reports whether every cell is on.
func (g *Grid) Full() bool { return g.lit == GridRows*GridCols }

// Draw clears the display and draws every lit cell.
func (g *Grid) Draw(disp drivers.Displayer) {
	w, h := disp.Size()
	cw, ch := w/GridCols, h/GridRows
	Clear(disp)
	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			if g.cells[r][c] {
				FillRect(disp, int16(c)*cw, int16(r)*ch, cw, ch)
			}
		}
	}
}
