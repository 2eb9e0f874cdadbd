package pixel

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Straighten converts one premultiplied float pixel into straight-alpha bytes.
// Alpha is clamped before it divides the color channels, and a pixel with
// zero alpha becomes the empty color.
func Straighten(r, g, b, a float32) color.NRGBA {
	a = clamp01(a)
	if a == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: toByte(r / a),
		G: toByte(g / a),
		B: toByte(b / a),
		A: toByte(a),
	}
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * math.MaxUint8))
}

// FromImage copies any decoded image into a new Image anchored at (0, 0).
func FromImage(src image.Image) *Image {
	if m, ok := src.(*Image); ok {
		return m
	}
	b := src.Bounds()
	dst := NewImage(b.Dx(), b.Dy())
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Downscale shrinks src so its longest edge is at most maxEdge, keeping the
// aspect ratio. Images that already fit, or maxEdge <= 0, come back as is.
func Downscale(src image.Image, maxEdge int) image.Image {
	bounds := src.Bounds()
	longest := max(bounds.Dx(), bounds.Dy())
	if maxEdge <= 0 || longest <= maxEdge {
		return src
	}
	w := max(1, bounds.Dx()*maxEdge/longest)
	h := max(1, bounds.Dy()*maxEdge/longest)
	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
