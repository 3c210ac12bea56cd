package flicker

import (
	"testing"

	"github.com/deskeyes/deskeyes/internal/framebuf"
	"github.com/deskeyes/deskeyes/internal/rng"
)

func TestFlickerRerollsEveryCell(t *testing.T) {
	fb := framebuf.New(128, 64)
	seq := rng.NewSequence(1, 0)
	a := New(seq)
	a.Activate(fb, 1000)

	if !a.DrawFrame(fb, 1000) {
		t.Fatal("flicker should run at its trigger time")
	}
	if seq.Calls() != 128 {
		t.Errorf("%d draws for one frame, want one per cell", seq.Calls())
	}
	if got := a.Grid().Lit(); got != 64 {
		t.Errorf("%d cells lit, want 64", got)
	}
	if !a.Grid().At(0, 0) || a.Grid().At(0, 1) {
		t.Error("alternating draws should alternate cells")
	}
	if got := fb.Count(); got != 64*64 {
		t.Errorf("%d pixels lit, want %d", got, 64*64)
	}
}

func TestFlickerWindow(t *testing.T) {
	fb := framebuf.New(128, 64)
	a := New(rng.NewSequence(1))
	a.Activate(fb, 5000)

	if !a.DrawFrame(fb, 14999) {
		t.Error("flicker stopped before its window ended")
	}
	if a.DrawFrame(fb, 15000) {
		t.Error("flicker ran past its window")
	}
	if a.Grid().Lit() != 0 {
		t.Error("grid not reset when the window ended")
	}
}

func TestFlickerWindowAcrossWrap(t *testing.T) {
	fb := framebuf.New(128, 64)
	a := New(rng.NewSequence(0))
	start := ^uint32(0) - 3000
	a.Activate(fb, start)

	if !a.DrawFrame(fb, start+5000) {
		t.Error("flicker stopped early after the clock wrapped")
	}
	if a.DrawFrame(fb, start+10000) {
		t.Error("flicker ran past its window after the clock wrapped")
	}
}
