package animation

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"

	"github.com/deskeyes/deskeyes/internal/media"
)

var (
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Off = color.RGBA{A: 0xFF}
)

type Animation interface {
	// Activate is called when the animation is being started on the display, with the current clock reading.
	// An animation may be re-used so this should be able to be called more than once.
	Activate(disp drivers.Displayer, now uint32)
	// DrawFrame draws the next frame of the animation into the display buffer. It does not flush; whoever drives the
	// animation calls Display and paces the frames.
	// Returns whether the animation should continue.
	DrawFrame(disp drivers.Displayer, now uint32) bool
}

// Clear turns every pixel of the display off.
func Clear(disp drivers.Displayer) {
	w, h := disp.Size()
	for x := int16(0); x < w; x++ {
		for y := int16(0); y < h; y++ {
			disp.SetPixel(x, y, Off)
		}
	}
}

// FillRect lights a w by h rectangle with its top left corner at x, y. Empty rectangles draw nothing.
func FillRect(disp drivers.Displayer, x, y, w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	_ = tinydraw.FilledRectangle(disp, x, y, w, h, On)
}

// DrawImage draws the image on the display at the given coordinates, thresholded to on/off pixels.
// Off-screen coordinates are clipped.
func DrawImage(disp drivers.Displayer, offX, offY int16, img image.Image) {
	w, h := disp.Size()
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		xx := int16(x-b.Min.X) + offX
		if xx < 0 || xx >= w {
			continue
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			yy := int16(y-b.Min.Y) + offY
			if yy < 0 || yy >= h {
				continue
			}
			if media.Lit(img.At(x, y)) {
				disp.SetPixel(xx, yy, On)
			} else {
				disp.SetPixel(xx, yy, Off)
			}
		}
	}
}
