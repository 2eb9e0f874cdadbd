// Package pixel holds the canonical pixel buffer handed to encoders.
//
// Channels are float32, nominally in [0,1], and premultiplied by alpha.
// Values outside that range are allowed; encoders clamp them.
package pixel

import (
	"image"
	"image/color"
	"math"
	"reflect"
)

// Source is a rectangular grid of premultiplied RGBA pixels.
type Source interface {
	Width() int32
	Height() int32
	// Pix is row-major, top row first, 4 channels (R, G, B, A) per pixel.
	Pix() []float32
}

// Image is the in-memory Source used by the rest of the module.
type Image struct {
	W, H int32
	Buf  []float32
}

// NewImage creates a fully transparent w x h image.
func NewImage(w, h int) *Image {
	return &Image{
		W:   int32(w),
		H:   int32(h),
		Buf: make([]float32, w*h*4),
	}
}

// Width, Height and Pix treat a nil *Image as empty.
func (m *Image) Width() int32 {
	if m == nil {
		return 0
	}
	return m.W
}

func (m *Image) Height() int32 {
	if m == nil {
		return 0
	}
	return m.H
}

func (m *Image) Pix() []float32 {
	if m == nil {
		return nil
	}
	return m.Buf
}

// Absent reports whether src is nil, including a typed nil pointer stored
// in the interface.
func Absent(src Source) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func (m *Image) ColorModel() color.Model { return color.RGBA64Model }
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, int(m.W), int(m.H)) }

func (m *Image) offset(x, y int) int {
	return (y*int(m.W) + x) * 4
}

// RGBAAt returns the raw premultiplied channels at (x, y).
func (m *Image) RGBAAt(x, y int) (r, g, b, a float32) {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return 0, 0, 0, 0
	}
	i := m.offset(x, y)
	return m.Buf[i+0], m.Buf[i+1], m.Buf[i+2], m.Buf[i+3]
}

// SetRGBA stores raw premultiplied channels at (x, y).
func (m *Image) SetRGBA(x, y int, r, g, b, a float32) {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return
	}
	i := m.offset(x, y)
	m.Buf[i+0] = r
	m.Buf[i+1] = g
	m.Buf[i+2] = b
	m.Buf[i+3] = a
}

// At clamps the stored channels into a premultiplied color.RGBA64.
func (m *Image) At(x, y int) color.Color {
	r, g, b, a := m.RGBAAt(x, y)
	a16 := to16(a)
	return color.RGBA64{
		R: min(to16(r), a16),
		G: min(to16(g), a16),
		B: min(to16(b), a16),
		A: a16,
	}
}

// Set stores c, which may be in any color model.
func (m *Image) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	m.SetRGBA(x, y,
		float32(r)/math.MaxUint16,
		float32(g)/math.MaxUint16,
		float32(b)/math.MaxUint16,
		float32(a)/math.MaxUint16)
}

func to16(v float32) uint16 {
	return uint16(math.Round(float64(clamp01(v)) * math.MaxUint16))
}

func clamp01(v float32) float32 {
	// NaN fails both comparisons, so check it first.
	if v != v || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
