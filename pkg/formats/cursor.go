package formats

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/leaguetools/uvee/pkg/geom"
)

// ByteCursor reads little-endian values sequentially from a fixed buffer.
// A failed read reports ErrTruncatedInput and leaves the position unchanged,
// so the offset in the error always names the field that could not be read.
// The cursor never inserts alignment padding: every skipped byte comes from
// an explicit Skip call.
type ByteCursor struct {
	data []byte
	off  int
}

// NewByteCursor returns a cursor positioned at the start of data.
func NewByteCursor(data []byte) *ByteCursor {
	return &ByteCursor{data: data}
}

// Pos returns the current read offset.
func (c *ByteCursor) Pos() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *ByteCursor) Remaining() int {
	return len(c.data) - c.off
}

// Seek repositions the cursor like io.Seeker. Seeking past the end is
// allowed; the next read fails with ErrTruncatedInput.
func (c *ByteCursor) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = int64(c.off) + offset
	case io.SeekEnd:
		target = int64(len(c.data)) + offset
	default:
		return 0, fmt.Errorf("invalid seek whence %d", whence)
	}
	if target < 0 {
		return 0, fmt.Errorf("invalid seek offset %d", target)
	}
	c.off = int(target)
	return target, nil
}

// Skip advances the cursor past n bytes.
func (c *ByteCursor) Skip(n int) error {
	if _, err := c.take(n); err != nil {
		return err
	}
	return nil
}

// take consumes n bytes, or consumes nothing and reports truncation.
func (c *ByteCursor) take(n int) ([]byte, error) {
	if n < 0 || c.off+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncatedInput, n, c.off, len(c.data)-c.off)
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// ReadBytes returns the next n raw bytes.
func (c *ByteCursor) ReadBytes(n int) ([]byte, error) {
	return c.take(n)
}

// ReadU16 reads one unsigned 16-bit value.
func (c *ByteCursor) ReadU16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU16s reads count unsigned 16-bit values in file order.
func (c *ByteCursor) ReadU16s(count int) ([]uint16, error) {
	b, err := c.take(2 * count)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return out, nil
}

// ReadU32 reads one unsigned 32-bit value.
func (c *ByteCursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU32s reads count unsigned 32-bit values in file order.
func (c *ByteCursor) ReadU32s(count int) ([]uint32, error) {
	b, err := c.take(4 * count)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return out, nil
}

// ReadI16 reads one signed 16-bit value.
func (c *ByteCursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadI32 reads one signed 32-bit value.
func (c *ByteCursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadF32 reads one 32-bit float.
func (c *ByteCursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

// ReadF32s reads count 32-bit floats in file order.
func (c *ByteCursor) ReadF32s(count int) ([]float32, error) {
	b, err := c.take(4 * count)
	if err != nil {
		return nil, err
	}
	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out, nil
}

// ReadVec2 reads two floats as a 2D vector.
func (c *ByteCursor) ReadVec2() (geom.Vec2, error) {
	f, err := c.ReadF32s(2)
	if err != nil {
		return geom.Vec2{}, err
	}
	return geom.Vec2{X: f[0], Y: f[1]}, nil
}

// ReadVec3 reads three floats as a 3D vector.
func (c *ByteCursor) ReadVec3() (geom.Vec3, error) {
	f, err := c.ReadF32s(3)
	if err != nil {
		return geom.Vec3{}, err
	}
	return geom.Vec3{X: f[0], Y: f[1], Z: f[2]}, nil
}

// ReadVec3s reads count 3D vectors in file order.
func (c *ByteCursor) ReadVec3s(count int) ([]geom.Vec3, error) {
	f, err := c.ReadF32s(3 * count)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Vec3, count)
	for i := range out {
		out[i] = geom.Vec3{X: f[3*i], Y: f[3*i+1], Z: f[3*i+2]}
	}
	return out, nil
}

// ReadFixedASCII reads an n-byte window and drops every zero byte anywhere
// inside it. This is not a length-prefixed or terminator-scanned string: a
// name like "Body\x00\x00tail" decodes to "Bodytail".
func (c *ByteCursor) ReadFixedASCII(n int) (string, error) {
	b, err := c.take(n)
	if err != nil {
		return "", err
	}
	out := make([]byte, 0, n)
	for _, ch := range b {
		if ch != 0 {
			out = append(out, ch)
		}
	}
	return string(out), nil
}

// ReadZeroTerminatedASCII reads bytes up to and including the next zero byte
// and returns the string before it.
func (c *ByteCursor) ReadZeroTerminatedASCII() (string, error) {
	for i := c.off; i < len(c.data); i++ {
		if c.data[i] == 0 {
			s := string(c.data[c.off:i])
			c.off = i + 1
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: no zero terminator after offset %d", ErrTruncatedInput, c.off)
}
