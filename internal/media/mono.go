package media

import (
	"image/color"
)

// threshold is the luma above which a pixel is lit on a monochrome panel.
const threshold = 0xA000

// Lit reports whether c should light a pixel on a monochrome panel. Transparent pixels are never lit.
func Lit(c color.Color) bool {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return false
	}
	// ITU-R BT.601 weights, as color.GrayModel uses
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return y >= threshold
}
