// Package flicker re-rolls every grid block every frame for a fixed window.
package flicker

import (
	"time"

	"tinygo.org/x/drivers"

	"github.com/deskeyes/deskeyes/internal/animation"
	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/rng"
)

const Window = 10 * time.Second

type Anim struct {
	grid  animation.Grid
	rand  rng.Source
	start uint32
}

func New(r rng.Source) *Anim {
	return &Anim{rand: r}
}

// Activate starts the window at now, which is the time the effect was triggered.
func (a *Anim) Activate(disp drivers.Displayer, now uint32) {
	a.start = now
	a.grid.Reset()
	animation.Clear(disp)
}

func (a *Anim) DrawFrame(disp drivers.Displayer, now uint32) bool {
	if clock.Since(now, a.start) >= clock.Millis(Window) {
		a.grid.Reset()
		return false
	}
	for r := 0; r < animation.GridRows; r++ {
		for c := 0; c < animation.GridCols; c++ {
			a.grid.Set(r, c, a.rand.Intn(2) == 1)
		}
	}
	a.grid.Draw(disp)
	return true
}

func (a *Anim) Grid() *animation.Grid { return &a.grid }
