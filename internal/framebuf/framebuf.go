// Package framebuf is an in-memory monochrome display. It backs the host simulator and stands in for the panel in
// tests.
package framebuf

import (
	"image/color"
)

// Buffer is a 1 bit per pixel drivers.Displayer. A pixel is lit when any colour channel of the value written to it is
// non-zero.
type Buffer struct {
	w, h    int16
	pix     []bool
	flushes int
	// OnDisplay, if set, is invoked with the buffer on every Display call.
	OnDisplay func(*Buffer) error
}

func New(w, h int16) *Buffer {
	return &Buffer{
		w:   w,
		h:   h,
		pix: make([]bool, int(w)*int(h)),
	}
}

func (b *Buffer) Size() (x, y int16) {
	return b.w, b.h
}

// SetPixel ignores out-of-bounds coordinates, as the panel drivers do.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.pix[int(y)*int(b.w)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

func (b *Buffer) Display() error {
	b.flushes++
	if b.OnDisplay != nil {
		return b.OnDisplay(b)
	}
	return nil
}

// Lit reports whether the pixel at x, y is on. Out-of-bounds pixels are off.
func (b *Buffer) Lit(x, y int16) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	return b.pix[int(y)*int(b.w)+int(x)]
}

// Count returns the number of lit pixels.
func (b *Buffer) Count() int {
	n := 0
	for _, p := range b.pix {
		if p {
			n++
		}
	}
	return n
}

// CountRect returns the number of lit pixels inside the rectangle.
func (b *Buffer) CountRect(x, y, w, h int16) int {
	n := 0
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if b.Lit(xx, yy) {
				n++
			}
		}
	}
	return n
}

// Flushes returns how many times Display was called.
func (b *Buffer) Flushes() int { return b.flushes }
