package mps7

import (
	"encoding/binary"
	"math"
)

// Cursor is a bounds-checked sequential reader over an in-memory
// buffer. All multi-byte reads are big-endian. A failed read returns
// *TruncatedError and leaves the offset untouched; reads never
// partially consume.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps buf at offset zero. The cursor does not copy the
// buffer; callers must not mutate it while decoding.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// AtEnd reports whether the whole buffer has been consumed.
func (c *Cursor) AtEnd() bool { return c.off >= len(c.buf) }

// take is the single read path: every typed read goes through it.
func (c *Cursor) take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, &TruncatedError{Offset: c.off, Want: n, Have: c.Remaining()}
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Uint8 reads one byte.
func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint32 reads a 4-byte big-endian unsigned integer.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint64 reads an 8-byte big-endian unsigned integer.
func (c *Cursor) Uint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// Float64 reads an 8-byte big-endian IEEE-754 double.
func (c *Cursor) Float64() (float64, error) {
	u, err := c.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// Bytes reads n raw bytes.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	return c.take(n)
}
