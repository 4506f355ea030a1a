package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeMove handles opcode words with high nibble 1, 2, or 3: MOVE and
// MOVEA. The size is implied by the group (1=byte, 2=long, 3=word).
//
// The destination fields are in the reversed order compared to every
// other instruction group: source mode/register sit at bits 5..3/2..0 as
// usual, but the destination register/mode sit at bits 11..9/8..6 —
// register before mode. Swapping these two fields is the single most
// common mis-decoding of this opcode group.
func decodeMove(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	var size m68k.Size
	switch op >> 12 {
	case 1:
		size = m68k.SizeByte
	case 2:
		size = m68k.SizeLong
	default:
		size = m68k.SizeWord
	}

	srcMode := (op >> 3) & 0x7
	srcReg := op & 0x7
	dstReg := (op >> 9) & 0x7
	dstMode := (op >> 6) & 0x7

	srcEA, err := decodeEA(c, srcMode, srcReg, size, cpu)
	if err != nil {
		return err
	}
	dstEA, err := decodeEA(c, dstMode, dstReg, size, cpu)
	if err != nil {
		return err
	}

	mnemonic := m68k.Move
	dst := eaOperand(dstEA)
	if dstMode == modeAddr {
		if size == m68k.SizeByte {
			return invalidf("byte-size MOVEA is not encodable")
		}
		mnemonic = m68k.Movea
		dst = regDirect(m68k.OperandAddrReg, dstReg)
	}

	inst.Mnemonic = mnemonic
	inst.Size = size
	inst.HasSize = true
	inst.Operands = []m68k.Operand{eaOperand(srcEA), dst}
	return nil
}
