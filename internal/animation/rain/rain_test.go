package rain

import (
	"testing"

	"github.com/deskeyes/deskeyes/internal/framebuf"
	"github.com/deskeyes/deskeyes/internal/rng"
)

func TestColumns(t *testing.T) {
	fb := framebuf.New(128, 64)
	a := New(rng.NewSequence(0))
	a.Activate(fb, 0)

	if got := len(a.Offsets()); got != 16 {
		t.Fatalf("%d columns, want 16", got)
	}
	for i, y := range a.Offsets() {
		if y >= 0 {
			t.Errorf("column %d starts on screen at %d", i, y)
		}
	}
}

func TestDropsFallAndWrap(t *testing.T) {
	fb := framebuf.New(128, 64)
	a := New(rng.NewSequence(0))
	a.Activate(fb, 0)

	// every column starts at -8 with this source
	for frame := 1; frame <= 8; frame++ {
		a.DrawFrame(fb, uint32(frame))
		want := int16((frame - 1) * Step)
		for i, y := range a.Offsets() {
			if y != want {
				t.Fatalf("frame %d column %d at %d, want %d", frame, i, y, want)
			}
		}
	}
	if fb.Count() == 0 {
		t.Error("no glyphs drawn on the last visible row")
	}

	a.DrawFrame(fb, 9)
	for i, y := range a.Offsets() {
		if y >= 0 {
			t.Errorf("column %d did not wrap: %d", i, y)
		}
	}
	if fb.Count() != 0 {
		t.Error("wrapped columns should be off screen")
	}
}

func TestColumnsAreIndependent(t *testing.T) {
	fb := framebuf.New(128, 64)
	// reseeds: column 0 -> -8, column 1 -> -64 (7 wraps to the last step), the rest -8
	a := New(rng.NewSequence(0, 7, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0))
	a.Activate(fb, 0)

	offs := a.Offsets()
	if offs[0] != -8 || offs[1] != -64 {
		t.Fatalf("initial offsets %d, %d, want -8, -64", offs[0], offs[1])
	}
	a.DrawFrame(fb, 1)
	if offs[0] != 0 || offs[1] != -56 {
		t.Fatalf("offsets after one frame %d, %d, want 0, -56", offs[0], offs[1])
	}
	if fb.CountRect(0, 0, 8, 64) == 0 {
		t.Error("column 0 should show a glyph")
	}
	if fb.CountRect(8, 0, 8, 64) != 0 {
		t.Error("column 1 should still be above the screen")
	}
}

func TestRainWindow(t *testing.T) {
	fb := framebuf.New(128, 64)
	a := New(rng.NewSequence(0))
	a.Activate(fb, 200)

	if !a.DrawFrame(fb, 10199) {
		t.Error("rain stopped before its window ended")
	}
	if a.DrawFrame(fb, 10200) {
		t.Error("rain ran past its window")
	}
}
