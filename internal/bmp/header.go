package bmp

const (
	signature = 0x4D42 // "BM"

	fileHeaderSize = 14
	infoHeaderSize = 40

	// pixelDataOffset is where pixel rows start; no color table precedes them.
	pixelDataOffset = fileHeaderSize + infoHeaderSize

	bitsPerPixel  = 24
	bytesPerPixel = bitsPerPixel / 8
)

// Compression is the biCompression field of the info header.
type Compression uint32

const (
	CompressionRGB Compression = iota
	CompressionRLE8
	CompressionRLE4
)

// FileHeader is BITMAPFILEHEADER.
type FileHeader struct {
	Signature       uint16
	FileSize        uint32
	Reserved        uint32
	PixelDataOffset uint32
}

// InfoHeader is BITMAPINFOHEADER.
type InfoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	ColorPlanes     uint16
	BitsPerPixel    uint16
	Compression     Compression
	ImageDataSize   uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ImportantColors uint32
}

// PaddedRowBytes is the stored length of one pixel row: width*3 rounded up
// to a multiple of 4.
func PaddedRowBytes(width int32) uint32 {
	return uint32(paddedRowBytes(width))
}

func paddedRowBytes(width int32) int64 {
	return (int64(width)*bytesPerPixel + 3) / 4 * 4
}

// imageDataSize is the pixel array length without the uint32 truncation
// the header fields apply.
func imageDataSize(width, height int32) int64 {
	return int64(height) * paddedRowBytes(width)
}

// NewHeaders builds both headers for a width x height 24-bit image.
// Dimensions are not validated.
func NewHeaders(width, height int32) (FileHeader, InfoHeader) {
	imageSize := uint32(height) * PaddedRowBytes(width)

	fh := FileHeader{
		Signature:       signature,
		FileSize:        pixelDataOffset + imageSize,
		PixelDataOffset: pixelDataOffset,
	}
	ih := InfoHeader{
		HeaderSize:    infoHeaderSize,
		Width:         width,
		Height:        height,
		ColorPlanes:   1,
		BitsPerPixel:  bitsPerPixel,
		Compression:   CompressionRGB,
		ImageDataSize: imageSize,
	}
	return fh, ih
}

func (h *FileHeader) write(w *writer) {
	w.U16(h.Signature)
	w.U32(h.FileSize)
	w.U32(h.Reserved)
	w.U32(h.PixelDataOffset)
}

func (h *InfoHeader) write(w *writer) {
	w.U32(h.HeaderSize)
	w.I32(h.Width)
	w.I32(h.Height)
	w.U16(h.ColorPlanes)
	w.U16(h.BitsPerPixel)
	w.U32(uint32(h.Compression))
	w.U32(h.ImageDataSize)
	w.I32(h.XPixelsPerMeter)
	w.I32(h.YPixelsPerMeter)
	w.U32(h.ColorsUsed)
	w.U32(h.ImportantColors)
}
