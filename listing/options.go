// Package listing walks a parsed hunk.File and produces an ordered,
// line-oriented textual disassembly: per-hunk section headers, decoded
// code, data directives, and bss reservations. It owns the decode-error
// recovery loop; the decoder itself never substitutes a fallback.
package listing

import "github.com/dis68k/dis68k/m68k"

// Options controls which optional columns and passes the listing
// generator includes.
type Options struct {
	ShowAddresses    bool
	ShowHex          bool
	ShowLineNumbers  bool
	Uppercase        bool
	Cpu              m68k.CpuVariant
}

// DefaultOptions matches the teacher's Rust counterpart's defaults:
// addresses, hex, and line numbers on; lower-case mnemonics; base 68000.
func DefaultOptions() Options {
	return Options{
		ShowAddresses:   true,
		ShowHex:         true,
		ShowLineNumbers: true,
		Cpu:             m68k.Cpu68000,
	}
}

// Line is one rendered line of the listing.
type Line struct {
	Number uint32
	Text   string
}
