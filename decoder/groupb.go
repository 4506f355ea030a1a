package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroupB handles opcode words with high nibble 1011: CMP, CMPA,
// CMPM, and EOR.
func decodeGroupB(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	opmode := (op >> 6) & 0x7
	switch opmode {
	case 0, 1, 2:
		return decodeStandardDyadic(c, op, inst, m68k.Cmp, cpu)
	case 3, 7:
		return decodeAddrForm(c, op, inst, m68k.Cmpa, cpu)
	default: // 4,5,6
		mode := (op >> 3) & 0x7
		if mode == modeAddr {
			size, _ := sizeFromBits00(op >> 6)
			srcReg := op & 0x7
			dstReg := (op >> 9) & 0x7
			inst.Mnemonic = m68k.Cmpm
			inst.Size = size
			inst.HasSize = true
			inst.Operands = []m68k.Operand{
				eaOperand(m68k.EA{Kind: m68k.EAAddrPostInc, Reg: srcReg}),
				eaOperand(m68k.EA{Kind: m68k.EAAddrPostInc, Reg: dstReg}),
			}
			return nil
		}
		return decodeStandardDyadic(c, op, inst, m68k.Eor, cpu)
	}
}
