package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroupC handles opcode words with high nibble 1100: AND, MULU,
// MULS, ABCD, and EXG.
func decodeGroupC(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	opmode := (op >> 6) & 0x7
	switch opmode {
	case 0, 1, 2:
		return decodeStandardDyadic(c, op, inst, m68k.And, cpu)
	case 3:
		return decodeMulDiv(c, op, inst, m68k.Mulu, cpu)
	case 7:
		return decodeMulDiv(c, op, inst, m68k.Muls, cpu)
	default: // 4,5,6
		switch {
		case op&0xF1F0 == 0xC100:
			return decodeExtendedForm(op, inst, m68k.Abcd, m68k.SizeByte)
		case op&0xF1F8 == 0xC140:
			return decodeExg(op, inst, m68k.OperandDataReg, m68k.OperandDataReg)
		case op&0xF1F8 == 0xC148:
			return decodeExg(op, inst, m68k.OperandAddrReg, m68k.OperandAddrReg)
		case op&0xF1F8 == 0xC188:
			return decodeExg(op, inst, m68k.OperandDataReg, m68k.OperandAddrReg)
		default:
			return decodeStandardDyadic(c, op, inst, m68k.And, cpu)
		}
	}
}

func decodeExg(op uint16, inst *m68k.Instruction, aKind, bKind m68k.OperandKind) error {
	a := (op >> 9) & 0x7
	b := op & 0x7
	inst.Mnemonic = m68k.Exg
	inst.Size = m68k.SizeLong
	inst.HasSize = true
	inst.Operands = []m68k.Operand{regDirect(aKind, a), regDirect(bKind, b)}
	return nil
}
