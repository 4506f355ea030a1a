package listing_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/dis68k/dis68k/hunk"
	"github.com/dis68k/dis68k/listing"
)

func TestGenerateMinimalCodeHunk(t *testing.T) {
	// rts, then clr.b (mode 7, reg 5) which is reserved for 68020+ and
	// always fails to decode on the base 68000, then one trailing byte.
	// Exercises the listing's own dc.w/dc.b recovery loop (the decoder
	// itself never substitutes a fallback for a genuine decode error).
	data := []byte{0x4E, 0x75, 0x42, 0x3D, 0x00}
	file := &hunk.File{
		FirstHunk: 0,
		LastHunk:  0,
		Hunks: []hunk.Hunk{
			{Index: 0, Kind: hunk.KindCode, Memory: hunk.MemoryAny, AllocSize: uint32(len(data)), Data: data},
		},
	}
	lines := listing.Generate(file, listing.DefaultOptions())

	var joined []string
	for _, l := range lines {
		joined = append(joined, l.Text)
	}
	text := strings.Join(joined, "\n")

	if !strings.Contains(text, "SECTION hunk_0, CODE (hunk 0, 5 bytes, mem=ANY)") {
		t.Fatalf("missing section header, got:\n%s", text)
	}
	if !strings.Contains(text, "rts") {
		t.Fatalf("missing decoded rts instruction, got:\n%s", text)
	}
	if !strings.Contains(text, "dc.w    $423d") {
		t.Fatalf("missing dc.w recovery for the undecodable word, got:\n%s", text)
	}
	if !strings.Contains(text, "dc.b") {
		t.Fatalf("missing dc.b recovery for the trailing odd byte, got:\n%s", text)
	}
}

func TestGenerateBssHunk(t *testing.T) {
	file := &hunk.File{
		Hunks: []hunk.Hunk{
			{Index: 1, Kind: hunk.KindBss, Memory: hunk.MemoryChip, AllocSize: 256},
		},
	}
	lines := listing.Generate(file, listing.DefaultOptions())
	found := false
	for _, l := range lines {
		if strings.Contains(l.Text, "ds.b     256") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a ds.b 256 line")
	}
}

func TestGenerateDataHunkString(t *testing.T) {
	file := &hunk.File{
		Hunks: []hunk.Hunk{
			{Index: 2, Kind: hunk.KindData, Memory: hunk.MemoryAny, AllocSize: 8, Data: []byte("TEST\x00\x00\x00\x00")},
		},
	}
	lines := listing.Generate(file, listing.DefaultOptions())
	found := false
	for _, l := range lines {
		if strings.Contains(l.Text, `dc.b     "TEST"`) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a dc.b string line for the printable run")
	}
}

func TestGenerateHunkInfoSummary(t *testing.T) {
	file := &hunk.File{
		Hunks: []hunk.Hunk{
			{Index: 0, Kind: hunk.KindCode, Memory: hunk.MemoryFast, AllocSize: 4, Data: []byte{0x4E, 0x75}},
		},
	}
	infos := listing.GenerateHunkInfo(file)
	if len(infos) != 1 {
		t.Fatalf("len(infos) = %d, want 1", len(infos))
	}
	if infos[0].Kind != "CODE" || infos[0].Memory != "FAST" {
		t.Fatalf("infos[0] = %+v", infos[0])
	}
}

func TestLineNumberPaddingMatchesLineCount(t *testing.T) {
	file := &hunk.File{
		Hunks: []hunk.Hunk{
			{Index: 0, Kind: hunk.KindBss, AllocSize: 1},
		},
	}
	lines := listing.Generate(file, listing.DefaultOptions())
	// Every line starts with its number, right-aligned to the width of the
	// total line count, followed by two spaces.
	width := len(strconv.Itoa(len(lines)))
	for _, l := range lines {
		prefix := fmt.Sprintf("%*d  ", width, l.Number)
		if !strings.HasPrefix(l.Text, prefix) {
			t.Fatalf("line-number prefix is not %q: %q", prefix, l.Text)
		}
	}
}
