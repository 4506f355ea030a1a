package cursor_test

import (
	"errors"
	"testing"

	"github.com/dis68k/dis68k/cursor"
)

func TestReadU16(t *testing.T) {
	c := cursor.New([]byte{0x12, 0x34, 0xFF, 0xFF})
	v, err := c.ReadU16()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("got %#x, want 0x1234", v)
	}
	if c.Position() != 2 {
		t.Errorf("position = %d, want 2", c.Position())
	}
}

func TestReadU32Truncated(t *testing.T) {
	c := cursor.New([]byte{0x00, 0x01})
	_, err := c.ReadU32()
	if !errors.Is(err, cursor.ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestReadI16Sign(t *testing.T) {
	c := cursor.New([]byte{0xFF, 0xD8})
	v, err := c.ReadI16()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -40 {
		t.Errorf("got %d, want -40", v)
	}
}

func TestAlignToLongword(t *testing.T) {
	c := cursor.New([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err := c.Skip(1); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if err := c.AlignToLongword(); err != nil {
		t.Fatalf("align: %v", err)
	}
	if c.Position() != 4 {
		t.Errorf("position = %d, want 4", c.Position())
	}
	if err := c.AlignToLongword(); err != nil {
		t.Fatalf("align on boundary should be a no-op: %v", err)
	}
	if c.Position() != 4 {
		t.Errorf("position changed on already-aligned cursor: %d", c.Position())
	}
}

func TestAlignPastEndTruncates(t *testing.T) {
	c := cursor.New([]byte{1, 2, 3})
	if err := c.Skip(1); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if err := c.AlignToLongword(); !errors.Is(err, cursor.ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}
}

func TestReadBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	c := cursor.New(src)
	got, err := c.ReadBytes(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got[0] = 0xFF
	if src[0] != 1 {
		t.Errorf("ReadBytes must copy, source was mutated")
	}
}

func TestRemainingAndEOF(t *testing.T) {
	c := cursor.New([]byte{1, 2})
	if c.IsEOF() {
		t.Fatalf("should not be EOF yet")
	}
	if _, err := c.ReadU16(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsEOF() {
		t.Errorf("should be EOF after consuming all bytes")
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", c.Remaining())
	}
}
