package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroup8 handles opcode words with high nibble 1000: OR, DIVU,
// DIVS, and SBCD.
func decodeGroup8(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	opmode := (op >> 6) & 0x7
	switch opmode {
	case 0, 1, 2:
		return decodeStandardDyadic(c, op, inst, m68k.Or, cpu)
	case 3:
		return decodeMulDiv(c, op, inst, m68k.Divu, cpu)
	case 7:
		return decodeMulDiv(c, op, inst, m68k.Divs, cpu)
	default: // 4,5,6
		if op&0xF1F0 == 0x8100 {
			return decodeExtendedForm(op, inst, m68k.Sbcd, m68k.SizeByte)
		}
		return decodeStandardDyadic(c, op, inst, m68k.Or, cpu)
	}
}
