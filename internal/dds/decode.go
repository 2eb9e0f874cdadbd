package dds

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math/bits"

	"github.com/mauserzjeh/dxt"
)

// Decode parses a DDS file and returns an image.Image.
// Supports DXT1, DXT3, DXT5 and uncompressed 24/32-bit RGB(A).
func Decode(dds []byte) (image.Image, error) {
	const totalHeader = 4 + ddsHeaderSize

	if len(dds) < totalHeader {
		return nil, fmt.Errorf("dds: data too short for header: %d < %d", len(dds), totalHeader)
	}
	if binary.LittleEndian.Uint32(dds[0:4]) != ddsMagic {
		return nil, fmt.Errorf("dds: missing magic 'DDS '")
	}

	hdr := dds[4:totalHeader]
	height := binary.LittleEndian.Uint32(hdr[8:12])
	width := binary.LittleEndian.Uint32(hdr[12:16])

	pf := hdr[pfOffset : pfOffset+ddsPfSize]
	pfFlags := binary.LittleEndian.Uint32(pf[4:8])
	fourCC := string(pf[8:12])
	rgbBitCount := binary.LittleEndian.Uint32(pf[12:16])

	data := dds[totalHeader:]
	if len(data) == 0 {
		return nil, fmt.Errorf("dds: no image data")
	}

	var (
		rgbaBytes []byte
		err       error
	)
	switch {
	case pfFlags&DDPF_FOURCC != 0 && fourCC == "DXT1":
		rgbaBytes, err = dxt.DecodeDXT1(data, uint(width), uint(height))
	case pfFlags&DDPF_FOURCC != 0 && fourCC == "DXT3":
		rgbaBytes, err = dxt.DecodeDXT3(data, uint(width), uint(height))
	case pfFlags&DDPF_FOURCC != 0 && fourCC == "DXT5":
		rgbaBytes, err = dxt.DecodeDXT5(data, uint(width), uint(height))
	case pfFlags&DDPF_FOURCC != 0:
		return nil, fmt.Errorf("dds: unsupported FourCC %q", fourCC)
	case rgbBitCount == 24 || rgbBitCount == 32:
		var masks [4]uint32
		for i := range masks {
			masks[i] = binary.LittleEndian.Uint32(pf[16+i*4:])
		}
		if pfFlags&DDPF_ALPHAPIXELS == 0 {
			masks[3] = 0
		}
		rgbaBytes, err = decodeUncompressed(data, int(width), int(height), int(rgbBitCount/8), masks)
	default:
		return nil, fmt.Errorf("dds: unsupported pixel format, rgbBits=%d", rgbBitCount)
	}
	if err != nil {
		return nil, fmt.Errorf("dds: decode error: %w", err)
	}

	expectedLen := int(width) * int(height) * 4
	if len(rgbaBytes) != expectedLen {
		return nil, fmt.Errorf("dds: unexpected decoded byte length %d, want %d", len(rgbaBytes), expectedLen)
	}
	// Decoded bytes are straight alpha.
	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	copy(img.Pix, rgbaBytes)
	return img, nil
}

// decodeUncompressed expands tightly packed scanlines into R, G, B, A bytes
// using the channel masks from the pixel format. A zero alpha mask means
// the surface is opaque.
func decodeUncompressed(data []byte, width, height, bytesPerPixel int, masks [4]uint32) ([]byte, error) {
	expected := width * height * bytesPerPixel
	if len(data) < expected {
		return nil, fmt.Errorf("uncompressed: %w (%d < %d)", io.ErrUnexpectedEOF, len(data), expected)
	}
	out := make([]byte, width*height*4)
	var raw [4]byte
	for i := 0; i < width*height; i++ {
		copy(raw[:], data[i*bytesPerPixel:(i+1)*bytesPerPixel])
		v := binary.LittleEndian.Uint32(raw[:])
		for c, mask := range masks {
			if mask == 0 {
				out[i*4+c] = 0xFF
				continue
			}
			out[i*4+c] = uint8((v & mask) >> bits.TrailingZeros32(mask))
		}
	}
	return out, nil
}
