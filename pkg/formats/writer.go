package formats

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/leaguetools/uvee/pkg/geom"
)

// ByteWriter builds a little-endian byte stream field by field, mirroring
// ByteCursor on the write side. It backs the synthetic sample files built
// by the decoder tests and the testdata generator. Writes to the backing
// buffer cannot fail, so methods return nothing.
type ByteWriter struct {
	buf bytes.Buffer
}

// NewByteWriter returns an empty writer.
func NewByteWriter() *ByteWriter {
	return &ByteWriter{}
}

// Bytes returns the accumulated stream.
func (w *ByteWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *ByteWriter) Len() int {
	return w.buf.Len()
}

// WriteBytes appends raw bytes.
func (w *ByteWriter) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteU16 appends unsigned 16-bit values in argument order.
func (w *ByteWriter) WriteU16(values ...uint16) {
	var b [2]byte
	for _, v := range values {
		binary.LittleEndian.PutUint16(b[:], v)
		w.buf.Write(b[:])
	}
}

// WriteU32 appends unsigned 32-bit values in argument order.
func (w *ByteWriter) WriteU32(values ...uint32) {
	var b [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(b[:], v)
		w.buf.Write(b[:])
	}
}

// WriteI16 appends signed 16-bit values in argument order.
func (w *ByteWriter) WriteI16(values ...int16) {
	for _, v := range values {
		w.WriteU16(uint16(v))
	}
}

// WriteI32 appends signed 32-bit values in argument order.
func (w *ByteWriter) WriteI32(values ...int32) {
	for _, v := range values {
		w.WriteU32(uint32(v))
	}
}

// WriteF32 appends 32-bit floats in argument order.
func (w *ByteWriter) WriteF32(values ...float32) {
	for _, v := range values {
		w.WriteU32(math.Float32bits(v))
	}
}

// WriteVec2 appends 2D vectors as consecutive float pairs.
func (w *ByteWriter) WriteVec2(vecs ...geom.Vec2) {
	for _, v := range vecs {
		w.WriteF32(v.X, v.Y)
	}
}

// WriteVec3 appends 3D vectors as consecutive float triples.
func (w *ByteWriter) WriteVec3(vecs ...geom.Vec3) {
	for _, v := range vecs {
		w.WriteF32(v.X, v.Y, v.Z)
	}
}

// WriteASCII appends the raw bytes of s with no terminator or padding.
func (w *ByteWriter) WriteASCII(s string) {
	w.buf.WriteString(s)
}

// WritePaddedASCII appends s into a fixed window of width bytes, zero-filling
// the tail. Strings longer than the window are truncated to fit.
func (w *ByteWriter) WritePaddedASCII(width int, s string) {
	if len(s) > width {
		s = s[:width]
	}
	w.buf.WriteString(s)
	for i := len(s); i < width; i++ {
		w.buf.WriteByte(0)
	}
}

// Pad appends n zero bytes.
func (w *ByteWriter) Pad(n int) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte(0)
	}
}
