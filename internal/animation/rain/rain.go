// Package rain drops a column of binary digits down every 8 pixel strip of the screen.
package rain

import (
	"time"

	"tinygo.org/x/drivers"

	"github.com/deskeyes/deskeyes/internal/animation"
	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/rng"
	"github.com/deskeyes/deskeyes/internal/text"
)

const (
	Window = 10 * time.Second

	ColumnWidth = 8
	// Step is how far each drop falls per frame.
	Step = 8
	// MaxColumns covers a 128 pixel wide panel.
	MaxColumns = 16
)

var glyphs = [2]string{"0", "1"}

type Anim struct {
	cols  [MaxColumns]int16
	n     int
	h     int16
	rand  rng.Source
	start uint32
}

func New(r rng.Source) *Anim {
	return &Anim{rand: r}
}

func (a *Anim) Activate(disp drivers.Displayer, now uint32) {
	w, h := disp.Size()
	a.h = h
	a.n = int(w / ColumnWidth)
	if a.n > MaxColumns {
		a.n = MaxColumns
	}
	for i := 0; i < a.n; i++ {
		a.cols[i] = a.reseed()
	}
	a.start = now
	animation.Clear(disp)
}

// reseed returns a random offset between one step and one screen height above the top edge, in whole steps.
func (a *Anim) reseed() int16 {
	return -Step * int16(1+a.rand.Intn(int(a.h/Step)))
}

func (a *Anim) DrawFrame(disp drivers.Displayer, now uint32) bool {
	if clock.Since(now, a.start) >= clock.Millis(Window) {
		return false
	}
	animation.Clear(disp)
	for i := 0; i < a.n; i++ {
		a.cols[i] += Step
		if a.cols[i] >= a.h {
			a.cols[i] = a.reseed()
		}
		if a.cols[i] >= 0 {
			text.Draw(disp, text.Small, int16(i*ColumnWidth), a.cols[i], glyphs[a.rand.Intn(len(glyphs))])
		}
	}
	return true
}

// Offsets returns the current vertical offset of every column.
func (a *Anim) Offsets() []int16 { return a.cols[:a.n] }
