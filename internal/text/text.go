// Package text positions strings on the panel. Coordinates are the top left corner of the text box, like every other
// primitive in this firmware; tinyfont itself works from the baseline.
package text

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/freeserif"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/deskeyes/deskeyes/internal/animation"
)

// Font is a glyph set with the metrics needed to place it by its top edge.
type Font struct {
	face tinyfont.Fonter
	// ascent is the distance from the top of the tallest digit to the baseline
	ascent int16
	// Height is the nominal line height in pixels.
	Height int16
}

var (
	Small  = Font{face: &proggy.TinySZ8pt7b, ascent: 7, Height: 8}
	// Medium has to fit the default credits line on a 128 pixel panel.
	Medium = Font{face: &freeserif.Regular9pt7b, ascent: 12, Height: 16}
	Large  = Font{face: &freesans.Regular12pt7b, ascent: 17, Height: 24}
)

// Draw writes s with its top left corner at x, y.
func Draw(disp drivers.Displayer, f Font, x, y int16, s string) {
	tinyfont.WriteLine(disp, f.face, x, y+f.ascent, s, animation.On)
}

// Width returns the advance width of s in pixels.
func Width(f Font, s string) int16 {
	_, outbox := tinyfont.LineWidth(f.face, s)
	return int16(outbox)
}

// Centered draws s horizontally centred with its top edge at y and returns the x it was drawn at. Strings wider
// than the display start at 0.
func Centered(disp drivers.Displayer, f Font, y int16, s string) int16 {
	w, _ := disp.Size()
	x := (w - Width(f, s)) / 2
	if x < 0 {
		x = 0
	}
	Draw(disp, f, x, y, s)
	return x
}

// Middle returns the y that vertically centres a line of f on the display.
func Middle(disp drivers.Displayer, f Font) int16 {
	_, h := disp.Size()
	return (h - f.Height) / 2
}
