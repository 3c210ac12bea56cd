package media

import (
	"bytes"
	"embed"
	"errors"
	"image"
	"image/color"
	"io/fs"

	"golang.org/x/image/bmp"
)

//go:embed media/*/*.bmp
var imgs embed.FS

// Bitmap is a decoded image reduced to one bit per pixel. The panel can only show on or off, so the colour
// threshold is applied once at load instead of on every draw.
type Bitmap struct {
	w, h int
	bits []byte
}

// LoadImage loads the named bitmap of the given type and checks it has the type's dimensions.
func LoadImage(typ Type, name string) (*Bitmap, error) {
	w, h := typ.Size()
	if w == 0 || h == 0 {
		return nil, errors.New("invalid media type " + string(typ))
	}

	data, err := fs.ReadFile(imgs, "media/"+string(typ)+"/"+name+".bmp")
	if err != nil {
		return nil, errors.New("load " + name + ": " + err.Error())
	}

	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.New("decode " + name + ": " + err.Error())
	}

	b := img.Bounds()
	if int(w) != b.Dx() || int(h) != b.Dy() {
		return nil, errors.New("invalid image size for type " + string(typ))
	}

	return newBitmap(img), nil
}

func newBitmap(img image.Image) *Bitmap {
	b := img.Bounds()
	bm := &Bitmap{
		w:    b.Dx(),
		h:    b.Dy(),
		bits: make([]byte, (b.Dx()*b.Dy()+7)/8),
	}
	for y := 0; y < bm.h; y++ {
		for x := 0; x < bm.w; x++ {
			if Lit(img.At(b.Min.X+x, b.Min.Y+y)) {
				i := y*bm.w + x
				bm.bits[i/8] |= 1 << (i % 8)
			}
		}
	}
	return bm
}

func (b *Bitmap) ColorModel() color.Model { return color.GrayModel }

func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

func (b *Bitmap) At(x, y int) color.Color {
	if b.On(x, y) {
		return color.Gray{Y: 0xFF}
	}
	return color.Gray{}
}

// On reports whether the pixel at x, y is lit. Out-of-bounds pixels are off.
func (b *Bitmap) On(x, y int) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	i := y*b.w + x
	return b.bits[i/8]&(1<<(i%8)) != 0
}
