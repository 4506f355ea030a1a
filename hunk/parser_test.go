package hunk_test

import (
	"errors"
	"testing"

	"github.com/dis68k/dis68k/hunk"
)

func TestParseMinimalExecutable(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x03, 0xF3, // HUNK_HEADER
		0x00, 0x00, 0x00, 0x00, // resident names: zero-length terminator
		0x00, 0x00, 0x00, 0x01, // hunk_count = 1
		0x00, 0x00, 0x00, 0x00, // first_hunk = 0
		0x00, 0x00, 0x00, 0x00, // last_hunk = 0
		0x00, 0x00, 0x00, 0x01, // size table entry: mem=any, size=1 longword
		0x00, 0x00, 0x03, 0xE9, // HUNK_CODE
		0x00, 0x00, 0x00, 0x01, // size = 1 longword
		0x4E, 0x75, 0x00, 0x00, // rts, padding
		0x00, 0x00, 0x03, 0xF2, // HUNK_END
	}

	f, err := hunk.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Hunks) != 1 {
		t.Fatalf("len(Hunks) = %d, want 1", len(f.Hunks))
	}
	h := f.Hunks[0]
	if h.Kind != hunk.KindCode {
		t.Fatalf("Kind = %v, want KindCode", h.Kind)
	}
	if h.AllocSize != 4 {
		t.Fatalf("AllocSize = %d, want 4", h.AllocSize)
	}
	if len(h.Data) != 4 || h.Data[0] != 0x4E || h.Data[1] != 0x75 {
		t.Fatalf("Data = %x, want 4E 75 00 00", h.Data)
	}
	if len(h.Relocations) != 0 {
		t.Fatalf("Relocations = %v, want none", h.Relocations)
	}
	if len(h.Symbols) != 0 {
		t.Fatalf("Symbols = %v, want none", h.Symbols)
	}
}

func TestParseBadMagic(t *testing.T) {
	_, err := hunk.Parse([]byte{0x00, 0x00, 0x00, 0x00})
	if !errors.Is(err, hunk.ErrBadMagic) {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	data := []byte{0x00, 0x00, 0x03, 0xF3, 0x00, 0x00}
	_, err := hunk.Parse(data)
	if !errors.Is(err, hunk.ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestParseSizeTableMismatch(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x03, 0xF3, // HUNK_HEADER
		0x00, 0x00, 0x00, 0x00, // no resident names
		0x00, 0x00, 0x00, 0x02, // hunk_count = 2
		0x00, 0x00, 0x00, 0x00, // first_hunk = 0
		0x00, 0x00, 0x00, 0x00, // last_hunk = 0 (implies count 1, mismatch)
	}
	_, err := hunk.Parse(data)
	if !errors.Is(err, hunk.ErrSizeTableMismatch) {
		t.Fatalf("err = %v, want ErrSizeTableMismatch", err)
	}
}

func TestParseUnknownHunkKind(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x03, 0xF3, // HUNK_HEADER
		0x00, 0x00, 0x00, 0x00, // no resident names
		0x00, 0x00, 0x00, 0x01, // hunk_count = 1
		0x00, 0x00, 0x00, 0x00, // first_hunk = 0
		0x00, 0x00, 0x00, 0x00, // last_hunk = 0
		0x00, 0x00, 0x00, 0x01, // size table entry
		0x00, 0x00, 0x01, 0x23, // bogus hunk kind
	}
	_, err := hunk.Parse(data)
	if !errors.Is(err, hunk.ErrUnknownHunkKind) {
		t.Fatalf("err = %v, want ErrUnknownHunkKind", err)
	}
}

func TestParseOrphanMetadata(t *testing.T) {
	// HUNK_SYMBOL with no preceding content hunk.
	data := []byte{
		0x00, 0x00, 0x03, 0xF3, // HUNK_HEADER
		0x00, 0x00, 0x00, 0x00, // no resident names
		0x00, 0x00, 0x00, 0x01, // hunk_count = 1
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // size table entry: mem=any, size=0
		0x00, 0x00, 0x03, 0xF0, // HUNK_SYMBOL, before any content hunk
	}
	_, err := hunk.Parse(data)
	if !errors.Is(err, hunk.ErrOrphanMetadata) {
		t.Fatalf("err = %v, want ErrOrphanMetadata", err)
	}
}

func TestParseChipMemoryFlag(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x03, 0xF3, // HUNK_HEADER
		0x00, 0x00, 0x00, 0x00, // no resident names
		0x00, 0x00, 0x00, 0x01, // hunk_count = 1
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x40, 0x00, 0x00, 0x01, // size table entry: bit30 set (CHIP), size=1 longword
		0x00, 0x00, 0x03, 0xE9, // HUNK_CODE
		0x00, 0x00, 0x00, 0x01,
		0x4E, 0x75, 0x00, 0x00,
		0x00, 0x00, 0x03, 0xF2, // HUNK_END
	}
	f, err := hunk.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Hunks[0].Memory != hunk.MemoryChip {
		t.Fatalf("Memory = %v, want MemoryChip", f.Hunks[0].Memory)
	}
}

func TestParseFastMemoryFlag(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x03, 0xF3,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x80, 0x00, 0x00, 0x01, // bit31 set (FAST)
		0x00, 0x00, 0x03, 0xE9,
		0x00, 0x00, 0x00, 0x01,
		0x4E, 0x75, 0x00, 0x00,
		0x00, 0x00, 0x03, 0xF2,
	}
	f, err := hunk.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Hunks[0].Memory != hunk.MemoryFast {
		t.Fatalf("Memory = %v, want MemoryFast", f.Hunks[0].Memory)
	}
}

func TestParseOverlayEndsStream(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x03, 0xF3, // HUNK_HEADER
		0x00, 0x00, 0x00, 0x00, // no resident names
		0x00, 0x00, 0x00, 0x01, // hunk_count = 1
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x03, 0xE9, // HUNK_CODE
		0x00, 0x00, 0x00, 0x01,
		0x4E, 0x75, 0x00, 0x00,
		0x00, 0x00, 0x03, 0xF2, // HUNK_END
		0x00, 0x00, 0x03, 0xF5, // HUNK_OVERLAY: rest of the stream is not ours
		0xDE, 0xAD, 0xBE, 0xEF, // garbage that would otherwise fail to parse
	}
	f, err := hunk.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Hunks) != 1 {
		t.Fatalf("len(Hunks) = %d, want 1", len(f.Hunks))
	}
}

func TestParseExtBlockSkipped(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x03, 0xF3, // HUNK_HEADER
		0x00, 0x00, 0x00, 0x00, // no resident names
		0x00, 0x00, 0x00, 0x01, // hunk_count = 1
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x03, 0xE9, // HUNK_CODE
		0x00, 0x00, 0x00, 0x01,
		0x4E, 0x75, 0x00, 0x00,
		0x00, 0x00, 0x03, 0xEF, // HUNK_EXT
		0x01, 0x00, 0x00, 0x01, // sub-type 1 (def), name length 1 longword
		'f', 'o', 'o', 0,
		0x00, 0x00, 0x00, 0x10, // value
		0x00, 0x00, 0x00, 0x00, // zero-length terminator
		0x00, 0x00, 0x03, 0xF2, // HUNK_END
	}
	f, err := hunk.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Hunks) != 1 || f.Hunks[0].Kind != hunk.KindCode {
		t.Fatalf("unexpected result: %+v", f)
	}
}
