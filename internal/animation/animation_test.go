package animation

import (
	"image"
	"image/color"
	"testing"

	"github.com/deskeyes/deskeyes/internal/framebuf"
)

func TestClear(t *testing.T) {
	fb := framebuf.New(128, 64)
	FillRect(fb, 0, 0, 128, 64)
	if fb.Count() != 128*64 {
		t.Fatalf("FillRect full screen lit %d pixels", fb.Count())
	}
	Clear(fb)
	if fb.Count() != 0 {
		t.Errorf("%d pixels still lit after Clear", fb.Count())
	}
}

func TestFillRect(t *testing.T) {
	fb := framebuf.New(128, 64)
	FillRect(fb, 40, 18, 25, 40)
	if got := fb.Count(); got != 25*40 {
		t.Errorf("lit %d pixels, want %d", got, 25*40)
	}
	if !fb.Lit(40, 18) || !fb.Lit(64, 57) || fb.Lit(65, 57) || fb.Lit(64, 58) {
		t.Error("rectangle edges are off")
	}

	FillRect(fb, 0, 0, 0, 10)
	FillRect(fb, 0, 0, 10, -1)
	if got := fb.Count(); got != 25*40 {
		t.Errorf("empty rectangles drew pixels: %d lit", got)
	}
}

func TestDrawImageClips(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.SetGray(x, y, color.Gray{Y: 0xFF})
		}
	}
	fb := framebuf.New(8, 8)
	DrawImage(fb, 6, -2, img)
	if got := fb.Count(); got != 4 {
		t.Errorf("clipped image lit %d pixels, want 4", got)
	}
	if !fb.Lit(7, 1) || fb.Lit(5, 0) {
		t.Error("image landed in the wrong place")
	}
}

func TestGrid(t *testing.T) {
	var g Grid
	if !g.Light(0, 0) {
		t.Error("first Light should report a new cell")
	}
	if g.Light(0, 0) {
		t.Error("second Light of the same cell should not report a new cell")
	}
	if g.Lit() != 1 {
		t.Errorf("Lit() = %d, want 1", g.Lit())
	}

	g.Set(1, 3, true)
	g.Set(1, 3, true)
	g.Set(0, 0, false)
	if g.Lit() != 1 || !g.At(1, 3) || g.At(0, 0) {
		t.Errorf("Set bookkeeping wrong: lit=%d", g.Lit())
	}

	for r := 0; r < GridRows; r++ {
		for c := 0; c < GridCols; c++ {
			g.Light(r, c)
		}
	}
	if !g.Full() {
		t.Error("grid should be full")
	}

	g.Reset()
	if g.Lit() != 0 || g.At(1, 3) {
		t.Error("Reset should clear every cell")
	}
}

func TestGridDraw(t *testing.T) {
	fb := framebuf.New(128, 64)
	FillRect(fb, 0, 0, 128, 64)

	var g Grid
	g.Light(2, 5)
	g.Draw(fb)

	if got := fb.Count(); got != 64 {
		t.Errorf("one cell lit %d pixels, want 64", got)
	}
	if got := fb.CountRect(40, 16, 8, 8); got != 64 {
		t.Errorf("cell 2,5 covers %d pixels of its block, want 64", got)
	}
}
