package m68k_test

import (
	"testing"

	"github.com/dis68k/dis68k/m68k"
)

func TestSizeSuffixAndBytes(t *testing.T) {
	cases := []struct {
		size   m68k.Size
		suffix string
		bytes  int
	}{
		{m68k.SizeNone, "", 0},
		{m68k.SizeByte, ".b", 1},
		{m68k.SizeWord, ".w", 2},
		{m68k.SizeLong, ".l", 4},
	}
	for _, c := range cases {
		if got := c.size.Suffix(); got != c.suffix {
			t.Errorf("Size(%d).Suffix() = %q, want %q", c.size, got, c.suffix)
		}
		if got := c.size.Bytes(); got != c.bytes {
			t.Errorf("Size(%d).Bytes() = %d, want %d", c.size, got, c.bytes)
		}
	}
}

func TestConditionFromBitsRoundTrip(t *testing.T) {
	for bits := uint16(0); bits < 16; bits++ {
		c := m68k.ConditionFromBits(bits)
		if int(c) != int(bits) {
			t.Fatalf("ConditionFromBits(%d) = %d", bits, c)
		}
		if c.Suffix() == "" {
			t.Fatalf("Condition %d has empty suffix", c)
		}
	}
}

func TestConditionSuffixes(t *testing.T) {
	cases := map[m68k.Condition]string{
		m68k.CondT: "t", m68k.CondEQ: "eq", m68k.CondNE: "ne", m68k.CondLE: "le",
	}
	for cond, want := range cases {
		if got := cond.Suffix(); got != want {
			t.Errorf("%v.Suffix() = %q, want %q", cond, got, want)
		}
	}
}

func TestMnemonicNameAndConditional(t *testing.T) {
	if m68k.Bcc.Name() != "b" {
		t.Errorf("Bcc.Name() = %q, want \"b\"", m68k.Bcc.Name())
	}
	if !m68k.Bcc.IsConditional() {
		t.Errorf("Bcc.IsConditional() = false, want true")
	}
	if m68k.Move.IsConditional() {
		t.Errorf("Move.IsConditional() = true, want false")
	}
	if m68k.Rts.Name() != "rts" {
		t.Errorf("Rts.Name() = %q, want \"rts\"", m68k.Rts.Name())
	}
}

func TestSuppressesSizeSuffix(t *testing.T) {
	if !m68k.Moveq.SuppressesSizeSuffix() {
		t.Errorf("Moveq.SuppressesSizeSuffix() = false, want true")
	}
	if !m68k.Jmp.SuppressesSizeSuffix() {
		t.Errorf("Jmp.SuppressesSizeSuffix() = false, want true")
	}
	if m68k.Add.SuppressesSizeSuffix() {
		t.Errorf("Add.SuppressesSizeSuffix() = true, want false")
	}
}
