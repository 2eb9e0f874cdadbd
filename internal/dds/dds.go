// Package dds writes uncompressed RGBA DirectDraw Surfaces and reads the
// common compressed and uncompressed variants.
package dds

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/erinpentecost/bmpenc/internal/pixel"
)

const (
	MimeType  = "image/vnd-ms.dds"
	Extension = "dds"

	ddsMagic = 0x20534444 // "DDS "

	ddsHeaderSize = 124
	ddsPfSize     = 32
	pfOffset      = 72

	// DDSD flags
	DDSD_CAPS        = 0x1
	DDSD_HEIGHT      = 0x2
	DDSD_WIDTH       = 0x4
	DDSD_PITCH       = 0x8
	DDSD_PIXELFORMAT = 0x1000

	// Pixel format flags
	DDPF_ALPHAPIXELS = 0x1
	DDPF_FOURCC      = 0x4
	DDPF_RGB         = 0x40

	// Caps
	DDSCAPS_TEXTURE = 0x1000
)

var ErrInvalidArgument = errors.New("dds: invalid argument")

// Encoder writes 32-bit RGBA DDS files. Alpha is kept, so there is no
// threshold.
type Encoder struct{}

func (Encoder) MimeType() string  { return MimeType }
func (Encoder) Extension() string { return Extension }

func (Encoder) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), Extension)
}

// Encode writes src as a lossless DDS. The on-disk byte order is R, G, B, A
// with straight alpha.
func (Encoder) Encode(w io.Writer, src pixel.Source) error {
	if pixel.Absent(src) || w == nil {
		return fmt.Errorf("%w: nil image or destination", ErrInvalidArgument)
	}
	width := int(src.Width())
	height := int(src.Height())
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: empty image", ErrInvalidArgument)
	}
	pix := src.Pix()
	if len(pix) < width*height*4 {
		return fmt.Errorf("%w: short pixel buffer", ErrInvalidArgument)
	}

	if err := writeHeader(w, width, height); err != nil {
		return err
	}

	row := make([]byte, width*4)
	for y := 0; y < height; y++ {
		i := y * width * 4
		for x := 0; x < width; x++ {
			c := pixel.Straighten(pix[i+0], pix[i+1], pix[i+2], pix[i+3])
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
			i += 4
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w io.Writer, width, height int) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(ddsMagic)); err != nil {
		return err
	}

	var header [ddsHeaderSize]byte
	put := func(off int, v uint32) {
		binary.LittleEndian.PutUint32(header[off:], v)
	}

	put(0, ddsHeaderSize)
	put(4, DDSD_CAPS|DDSD_HEIGHT|DDSD_WIDTH|DDSD_PIXELFORMAT|DDSD_PITCH)
	put(8, uint32(height))
	put(12, uint32(width))
	put(16, uint32(width*4)) // pitch

	put(pfOffset+0, ddsPfSize)
	put(pfOffset+4, DDPF_RGB|DDPF_ALPHAPIXELS)
	put(pfOffset+12, 32) // bpp
	// Masks chosen so that the little-endian bytes land as R, G, B, A.
	put(pfOffset+16, 0x000000FF)
	put(pfOffset+20, 0x0000FF00)
	put(pfOffset+24, 0x00FF0000)
	put(pfOffset+28, 0xFF000000)

	put(104, DDSCAPS_TEXTURE)

	_, err := w.Write(header[:])
	return err
}
