package framebuf

import (
	"errors"
	"image/color"
	"testing"
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestSetPixel(t *testing.T) {
	b := New(8, 4)
	b.SetPixel(1, 2, white)
	b.SetPixel(-1, 0, white)
	b.SetPixel(8, 0, white)
	b.SetPixel(0, 4, white)

	if !b.Lit(1, 2) {
		t.Error("pixel 1,2 should be lit")
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}

	b.SetPixel(1, 2, color.RGBA{A: 0xFF})
	if b.Lit(1, 2) {
		t.Error("black with alpha should clear the pixel")
	}
}

func TestCountRect(t *testing.T) {
	b := New(16, 16)
	for x := int16(0); x < 4; x++ {
		for y := int16(0); y < 2; y++ {
			b.SetPixel(x+3, y+5, white)
		}
	}
	if got := b.CountRect(3, 5, 4, 2); got != 8 {
		t.Errorf("CountRect inside = %d, want 8", got)
	}
	if got := b.CountRect(0, 0, 3, 16); got != 0 {
		t.Errorf("CountRect outside = %d, want 0", got)
	}
}

func TestDisplayHook(t *testing.T) {
	b := New(2, 2)
	want := errors.New("bus busy")
	b.OnDisplay = func(*Buffer) error { return want }

	if err := b.Display(); err != want {
		t.Errorf("Display() = %v, want %v", err, want)
	}
	if b.Flushes() != 1 {
		t.Errorf("Flushes() = %d, want 1", b.Flushes())
	}
}
