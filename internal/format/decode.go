package format

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/dblezek/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/erinpentecost/bmpenc/internal/dds"
)

// Decode loads the image at path. TGA and DDS have no magic that
// image.Decode can sniff reliably, so they are chosen by extension.
func Decode(path string) (image.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return DecodeBytes(filepath.Ext(path), raw)
}

// DecodeBytes decodes raw, using ext to route formats image.Decode cannot
// detect.
func DecodeBytes(ext string, raw []byte) (image.Image, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "dds":
		return dds.Decode(raw)
	case "tga":
		img, err := tga.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode tga: %w", err)
		}
		return img, nil
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
