package mirror

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Axis selects which coordinates are reversed.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY

	AxisNone Axis = 0
	// AxisBoth turns the image upside down, which is what a panel mounted the other way round needs.
	AxisBoth = AxisX | AxisY
)

// Mirror reverses pixel coordinates on the way to the wrapped display.
type Mirror struct {
	d    drivers.Displayer
	axis Axis
	w, h int16
}

func New(d drivers.Displayer, axis Axis) *Mirror {
	w, h := d.Size()
	return &Mirror{
		d:    d,
		axis: axis,
		w:    w,
		h:    h,
	}
}

func (m *Mirror) Size() (x, y int16) {
	return m.w, m.h
}

func (m *Mirror) SetPixel(x, y int16, c color.RGBA) {
	if m.axis&AxisX != 0 {
		x = m.w - x - 1
	}
	if m.axis&AxisY != 0 {
		y = m.h - y - 1
	}
	m.d.SetPixel(x, y, c)
}

func (m *Mirror) Display() error {
	return m.d.Display()
}
