// Package fill lights random grid blocks one at a time until the whole screen is lit.
package fill

import (
	"tinygo.org/x/drivers"

	"github.com/deskeyes/deskeyes/internal/animation"
	"github.com/deskeyes/deskeyes/internal/rng"
)

// Anim samples cells with replacement, so the number of frames is unbounded in the worst case; on average it is
// about n*ln(n) for n cells.
type Anim struct {
	grid  animation.Grid
	rand  rng.Source
	draws int
}

func New(r rng.Source) *Anim {
	return &Anim{rand: r}
}

func (a *Anim) Activate(disp drivers.Displayer, _ uint32) {
	a.grid.Reset()
	a.draws = 0
	animation.Clear(disp)
}

// DrawFrame returns false once every cell is lit, leaving the full screen drawn and the grid empty for the next run.
func (a *Anim) DrawFrame(disp drivers.Displayer, _ uint32) bool {
	if a.grid.Full() {
		a.grid.Reset()
		return false
	}
	row := a.rand.Intn(animation.GridRows)
	col := a.rand.Intn(animation.GridCols)
	a.grid.Light(row, col)
	a.draws++
	a.grid.Draw(disp)
	return true
}

// Grid exposes the cells of the current run.
func (a *Anim) Grid() *animation.Grid { return &a.grid }

// Draws returns how many cells were picked in the current or last run, repeats included.
func (a *Anim) Draws() int { return a.draws }
