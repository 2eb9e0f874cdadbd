package bmp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaddedRowBytes(t *testing.T) {
	want := []uint32{0, 4, 8, 12, 12, 16, 20, 24, 24}
	for w, exp := range want {
		require.Equalf(t, exp, PaddedRowBytes(int32(w)), "width %d", w)
	}
	for w := int32(0); w < 1000; w++ {
		row := PaddedRowBytes(w)
		require.Zero(t, row%4)
		require.LessOrEqual(t, row-uint32(w)*3, uint32(3))
	}
}

func TestNewHeaders(t *testing.T) {
	fh, ih := NewHeaders(1, 1)
	require.Equal(t, uint16(0x4D42), fh.Signature)
	require.Equal(t, uint32(58), fh.FileSize)
	require.Equal(t, uint32(54), fh.PixelDataOffset)
	require.Zero(t, fh.Reserved)

	require.Equal(t, uint32(40), ih.HeaderSize)
	require.Equal(t, uint16(1), ih.ColorPlanes)
	require.Equal(t, uint16(24), ih.BitsPerPixel)
	require.Equal(t, CompressionRGB, ih.Compression)
	require.Equal(t, uint32(4), ih.ImageDataSize)

	for _, dims := range [][2]int32{{2, 2}, {3, 7}, {640, 480}, {17, 1}} {
		fh, ih := NewHeaders(dims[0], dims[1])
		require.Equal(t, uint32(dims[1])*PaddedRowBytes(dims[0]), ih.ImageDataSize)
		require.Equal(t, 54+ih.ImageDataSize, fh.FileSize)
		require.Equal(t, dims[0], ih.Width)
		require.Equal(t, dims[1], ih.Height)
	}
}

func TestNewHeadersDegenerate(t *testing.T) {
	fh, ih := NewHeaders(0, 5)
	require.Zero(t, ih.ImageDataSize)
	require.Equal(t, uint32(54), fh.FileSize)
}
