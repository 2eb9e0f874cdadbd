package format

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erinpentecost/bmpenc/internal/bmp"
	"github.com/erinpentecost/bmpenc/internal/dds"
	"github.com/erinpentecost/bmpenc/internal/pixel"
)

func TestRegistryLookup(t *testing.T) {
	r := Default(bmp.DefaultThreshold)
	require.Len(t, r.Encoders(), 2)

	for _, ext := range []string{"bmp", ".bmp", "BMP", "dip", ".Dip"} {
		e, ok := r.ForExtension(ext)
		require.Truef(t, ok, "%q", ext)
		require.Equal(t, "image/bmp", e.MimeType())
	}

	e, ok := r.ForExtension(".dds")
	require.True(t, ok)
	require.Equal(t, dds.Extension, e.Extension())

	_, ok = r.ForExtension("png")
	require.False(t, ok)

	e, ok = r.ForMimeType("IMAGE/BMP")
	require.True(t, ok)
	require.Equal(t, "bmp", e.Extension())

	_, ok = r.ForMimeType("image/png")
	require.False(t, ok)

	e, err := r.ForPath(filepath.Join("out", "tile.DIP"))
	require.NoError(t, err)
	require.Equal(t, "bmp", e.Extension())

	_, err = r.ForPath("tile.png")
	require.Error(t, err)
}

func TestDefaultThreshold(t *testing.T) {
	e, ok := Default(300).ForExtension("bmp")
	require.True(t, ok)
	require.Equal(t, 255, e.(*bmp.Encoder).Threshold())
}

func TestDecodePNGToBMP(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	src.SetNRGBA(1, 0, color.NRGBA{200, 100, 50, 10})

	path := filepath.Join(t.TempDir(), "in.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0666))

	img, err := Decode(path)
	require.NoError(t, err)

	enc, err := Default(bmp.DefaultThreshold).ForPath("out.bmp")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, enc.Encode(&out, pixel.FromImage(img)))
	require.Equal(t, []byte{30, 20, 10, 0, 0, 0, 0, 0}, out.Bytes()[54:])
}

func TestDecodeDDS(t *testing.T) {
	img := pixel.NewImage(1, 1)
	img.SetRGBA(0, 0, 0, 1, 0, 1)
	var buf bytes.Buffer
	require.NoError(t, dds.Encoder{}.Encode(&buf, img))

	decoded, err := DecodeBytes(".DDS", buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{0, 255, 0, 255}, color.NRGBAModel.Convert(decoded.At(0, 0)))
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "nope.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeBytes(".png", []byte("not an image"))
	require.Error(t, err)
}
