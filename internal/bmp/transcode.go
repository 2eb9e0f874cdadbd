package bmp

import (
	"github.com/erinpentecost/bmpenc/internal/pixel"
)

// writePixels emits the pixel array: bottom row first, BGR, each row
// zero padded to a 4 byte boundary.
func writePixels(w *writer, src pixel.Source, threshold uint8) {
	width := int(src.Width())
	height := int(src.Height())
	if width <= 0 || height <= 0 {
		return
	}
	pix := src.Pix()

	// Padding stays zero because only the first width*3 bytes are rewritten.
	row := make([]byte, PaddedRowBytes(src.Width()))

	for y := height - 1; y >= 0; y-- {
		i := y * width * 4
		off := 0
		for x := 0; x < width; x++ {
			c := pixel.Straighten(pix[i+0], pix[i+1], pix[i+2], pix[i+3])
			if c.A < threshold {
				row[off+0], row[off+1], row[off+2] = 0, 0, 0
			} else {
				row[off+0] = c.B
				row[off+1] = c.G
				row[off+2] = c.R
			}
			off += bytesPerPixel
			i += 4
		}
		w.Bytes(row)
		if w.err != nil {
			return
		}
	}
}
