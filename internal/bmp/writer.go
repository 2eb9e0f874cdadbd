package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Flusher is a destination that buffers on its own side.
type Flusher interface {
	Flush() error
}

// writer serializes little-endian fixed width fields. The first error
// sticks; later writes are dropped and reported by Flush.
type writer struct {
	dst     io.Writer
	bw      *bufio.Writer
	scratch [4]byte
	err     error
}

func newWriter(dst io.Writer) *writer {
	return &writer{dst: dst, bw: bufio.NewWriter(dst)}
}

func (w *writer) Bytes(p []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.bw.Write(p); err != nil {
		w.err = fmt.Errorf("%w: %w", ErrIO, err)
	}
}

func (w *writer) U16(v uint16) {
	binary.LittleEndian.PutUint16(w.scratch[:2], v)
	w.Bytes(w.scratch[:2])
}

func (w *writer) U32(v uint32) {
	binary.LittleEndian.PutUint32(w.scratch[:], v)
	w.Bytes(w.scratch[:])
}

func (w *writer) I32(v int32) {
	w.U32(uint32(v))
}

// Flush pushes buffered bytes to the destination, and flushes the
// destination too when it buffers.
func (w *writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.bw.Flush(); err != nil {
		w.err = fmt.Errorf("%w: flush: %w", ErrIO, err)
		return w.err
	}
	if f, ok := w.dst.(Flusher); ok {
		if err := f.Flush(); err != nil {
			w.err = fmt.Errorf("%w: flush destination: %w", ErrIO, err)
			return w.err
		}
	}
	return nil
}
