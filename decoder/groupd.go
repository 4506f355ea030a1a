package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroupD handles opcode words with high nibble 1101: ADD, ADDA,
// and ADDX.
func decodeGroupD(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	opmode := (op >> 6) & 0x7
	switch opmode {
	case 0, 1, 2:
		return decodeStandardDyadic(c, op, inst, m68k.Add, cpu)
	case 3, 7:
		return decodeAddrForm(c, op, inst, m68k.Adda, cpu)
	default: // 4,5,6
		if op&0xF130 == 0xD100 {
			size, _ := sizeFromBits00(op >> 6)
			return decodeExtendedForm(op, inst, m68k.Addx, size)
		}
		return decodeStandardDyadic(c, op, inst, m68k.Add, cpu)
	}
}
