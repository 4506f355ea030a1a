// Package decoder implements the 68000 effective-address decoder and the
// two-level-dispatch instruction decoder. It is stateless per call: all
// state needed to disassemble a hunk is carried by the caller.
package decoder

import (
	"errors"
	"fmt"

	"github.com/dis68k/dis68k/cursor"
)

var (
	// ErrTruncated means a read needed by the current instruction ran
	// past the end of the supplied bytes.
	ErrTruncated = cursor.ErrTruncated
	// ErrInvalidEncoding means a decoded instruction violated a size or
	// operand constraint (e.g. MOVE.B to An).
	ErrInvalidEncoding = errors.New("decoder: invalid encoding")
	// ErrUnsupported means the encoding is only valid on a CPU variant
	// newer than the one requested.
	ErrUnsupported = errors.New("decoder: unsupported on this cpu variant")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidEncoding, fmt.Sprintf(format, args...))
}

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}
