package format_test

import (
	"testing"

	"github.com/dis68k/dis68k/decoder"
	"github.com/dis68k/dis68k/format"
	"github.com/dis68k/dis68k/m68k"
)

func decode(t *testing.T, b []byte, at uint32) *m68k.Instruction {
	t.Helper()
	inst, _, err := decoder.Decode(b, at, 0, m68k.Cpu68000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return inst
}

func TestFormatRTS(t *testing.T) {
	inst := decode(t, []byte{0x4E, 0x75}, 0)
	if got := format.Format(inst, format.Options{}); got != "rts" {
		t.Fatalf("got %q, want %q", got, "rts")
	}
}

func TestFormatJSRAddrDisp(t *testing.T) {
	inst := decode(t, []byte{0x4E, 0xAE, 0xFD, 0xD8}, 0)
	want := "jsr      (-552,a6)"
	if got := format.Format(inst, format.Options{}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMoveaLong(t *testing.T) {
	inst := decode(t, []byte{0x2C, 0x78, 0x00, 0x04}, 0)
	want := "movea.l  ($0004).w,a6"
	if got := format.Format(inst, format.Options{}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMoveqZero(t *testing.T) {
	inst := decode(t, []byte{0x70, 0x00}, 0)
	want := "moveq    #0,d0"
	if got := format.Format(inst, format.Options{}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatBeq(t *testing.T) {
	payload := append(make([]byte, 0x12), 0x67, 0x00, 0x00, 0x06)
	inst, _, err := decoder.Decode(payload, 0x12, 0, m68k.Cpu68000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := "beq      $0000001A"
	if got := format.Format(inst, format.Options{}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatUppercaseOption(t *testing.T) {
	inst := decode(t, []byte{0x4E, 0x75}, 0)
	if got := format.Format(inst, format.Options{Uppercase: true}); got != "RTS" {
		t.Fatalf("got %q, want RTS", got)
	}
}

func TestFormatMovemPredecrement(t *testing.T) {
	inst := decode(t, []byte{0x48, 0xE7, 0xC0, 0x00}, 0)
	want := "movem.l  d0-d1,-(sp)"
	if got := format.Format(inst, format.Options{}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatExgHasLongSuffix(t *testing.T) {
	inst := decode(t, []byte{0xC7, 0x8D}, 0)
	want := "exg.l    d3,a5"
	if got := format.Format(inst, format.Options{}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatDcFallback(t *testing.T) {
	got := format.FormatDc(0x1234, m68k.SizeWord)
	want := "dc.w    $1234"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
