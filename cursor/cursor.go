// Package cursor provides a bounds-checked big-endian reader over an
// immutable byte slice. It is the sole mechanism the hunk parser and the
// instruction decoder use to read bytes, so that bounds checking funnels
// through one place.
package cursor

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned whenever a read or skip would exceed the
// remaining bytes in the underlying slice.
var ErrTruncated = errors.New("cursor: truncated")

// Cursor is a positioned view over an immutable byte slice.
type Cursor struct {
	bytes []byte
	pos   int
}

// New returns a Cursor positioned at the start of b. b is not copied; the
// caller must not mutate it while the Cursor is in use.
func New(b []byte) *Cursor {
	return &Cursor{bytes: b}
}

// Position returns the current read offset.
func (c *Cursor) Position() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.bytes) - c.pos }

// IsEOF reports whether the cursor has no bytes left.
func (c *Cursor) IsEOF() bool { return c.Remaining() <= 0 }

func (c *Cursor) need(n int) error {
	if c.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, c.pos, c.Remaining())
	}
	return nil
}

// ReadU16 reads a big-endian uint16, advancing by 2.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := uint16(c.bytes[c.pos])<<8 | uint16(c.bytes[c.pos+1])
	c.pos += 2
	return v, nil
}

// ReadU32 reads a big-endian uint32, advancing by 4.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := uint32(c.bytes[c.pos])<<24 | uint32(c.bytes[c.pos+1])<<16 |
		uint32(c.bytes[c.pos+2])<<8 | uint32(c.bytes[c.pos+3])
	c.pos += 4
	return v, nil
}

// ReadI16 reads a big-endian, sign-interpreted int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadI32 reads a big-endian, sign-interpreted int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadBytes reads and returns a copy of the next n bytes, advancing by n.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("cursor: negative read length %d", n)
	}
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.bytes[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// AlignToLongword advances the cursor to the next multiple of 4. It is a
// no-op if already aligned, and fails with ErrTruncated only if the
// advance would run past the end of the buffer.
func (c *Cursor) AlignToLongword() error {
	rem := c.pos % 4
	if rem == 0 {
		return nil
	}
	return c.Skip(4 - rem)
}

// Peek returns the n bytes starting at the current position without
// advancing the cursor.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	return c.bytes[c.pos : c.pos+n], nil
}
