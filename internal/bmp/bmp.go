// Package bmp writes 24-bit uncompressed Windows bitmaps.
//
// Alpha is not stored. Pixels whose straight alpha falls below the
// encoder's threshold are written black; everything else keeps its
// un-premultiplied color.
package bmp

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/erinpentecost/bmpenc/internal/pixel"
)

const (
	MimeType  = "image/bmp"
	Extension = "bmp"

	// DefaultThreshold is the alpha cutoff used by New.
	DefaultThreshold = 128
)

var (
	ErrInvalidArgument = errors.New("bmp: invalid argument")
	ErrIO              = errors.New("bmp: write failed")
)

var extensions = []string{Extension, "dip"}

// Encoder holds the alpha threshold, always within [0, 255].
// Build it with New: the zero value has threshold 0 and keeps every pixel's
// color, not the DefaultThreshold of 128.
type Encoder struct {
	threshold uint8
}

type Option func(*Encoder)

// WithThreshold sets the alpha cutoff, clamped to [0, 255].
func WithThreshold(threshold int) Option {
	return func(e *Encoder) { e.SetThreshold(threshold) }
}

func New(opts ...Option) *Encoder {
	e := &Encoder{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetThreshold clamps threshold to [0, 255] and stores it.
func (e *Encoder) SetThreshold(threshold int) {
	e.threshold = uint8(min(max(threshold, 0), 255))
}

func (e *Encoder) Threshold() int { return int(e.threshold) }

func (e *Encoder) MimeType() string  { return MimeType }
func (e *Encoder) Extension() string { return Extension }

// SupportsExtension matches "bmp" or "dip", with or without a leading dot,
// ignoring case.
func (e *Encoder) SupportsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, known := range extensions {
		if strings.EqualFold(ext, known) {
			return true
		}
	}
	return false
}

// Encode writes src to w as a complete BMP file and flushes it.
func (e *Encoder) Encode(w io.Writer, src pixel.Source) error {
	if pixel.Absent(src) {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if w == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidArgument)
	}
	width, height := src.Width(), src.Height()
	if width > 0 && height > 0 {
		if size := imageDataSize(width, height); size > math.MaxUint32-pixelDataOffset {
			return fmt.Errorf("%w: %dx%d image needs %d bytes, more than a BMP can address",
				ErrInvalidArgument, width, height, pixelDataOffset+size)
		}
		if need := int(width) * int(height) * 4; len(src.Pix()) < need {
			return fmt.Errorf("%w: %dx%d image has %d channels, want %d",
				ErrInvalidArgument, width, height, len(src.Pix()), need)
		}
	}

	fh, ih := NewHeaders(width, height)

	bw := newWriter(w)
	fh.write(bw)
	ih.write(bw)
	writePixels(bw, src, e.threshold)
	return bw.Flush()
}

// Encode writes src to w with the default threshold.
func Encode(w io.Writer, src pixel.Source) error {
	return New().Encode(w, src)
}
