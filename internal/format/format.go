// Package format dispatches images to encoders by extension or MIME type,
// and loads input images of any supported format.
package format

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/erinpentecost/bmpenc/internal/bmp"
	"github.com/erinpentecost/bmpenc/internal/dds"
	"github.com/erinpentecost/bmpenc/internal/pixel"
)

// Encoder is implemented by every output format.
type Encoder interface {
	MimeType() string
	Extension() string
	SupportsExtension(ext string) bool
	Encode(w io.Writer, src pixel.Source) error
}

// Registry is an ordered list of encoders; the first match wins.
type Registry struct {
	encoders []Encoder
}

// Default returns a registry with the BMP encoder, using threshold as its
// alpha cutoff, followed by the lossless DDS encoder.
func Default(threshold int) *Registry {
	r := &Registry{}
	r.Register(bmp.New(bmp.WithThreshold(threshold)))
	r.Register(dds.Encoder{})
	return r
}

func (r *Registry) Register(e Encoder) {
	r.encoders = append(r.encoders, e)
}

func (r *Registry) Encoders() []Encoder {
	return r.encoders
}

// ForExtension finds the encoder for ext, with or without its leading dot.
func (r *Registry) ForExtension(ext string) (Encoder, bool) {
	for _, e := range r.encoders {
		if e.SupportsExtension(ext) {
			return e, true
		}
	}
	return nil, false
}

func (r *Registry) ForMimeType(mimeType string) (Encoder, bool) {
	for _, e := range r.encoders {
		if strings.EqualFold(e.MimeType(), mimeType) {
			return e, true
		}
	}
	return nil, false
}

// ForPath picks the encoder from the extension of path.
func (r *Registry) ForPath(path string) (Encoder, error) {
	ext := filepath.Ext(path)
	if e, ok := r.ForExtension(ext); ok {
		return e, nil
	}
	return nil, fmt.Errorf("no encoder for %q", path)
}
