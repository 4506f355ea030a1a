// Package format renders decoded m68k.Instruction values as Motorola-
// syntax assembly text. It holds no decoding logic of its own.
package format

// Options controls rendering choices that don't change what an
// instruction means, only how its text looks.
type Options struct {
	// Uppercase renders mnemonics (and their size/condition suffixes) in
	// upper case. Default (zero value) is lower case.
	Uppercase bool
}
