package decoder

import "github.com/dis68k/dis68k/m68k"

// decodeMoveq handles opcode words with high nibble 0111: MOVEQ.
func decodeMoveq(op uint16, inst *m68k.Instruction) error {
	if op&0x0100 != 0 {
		return invalidf("reserved bit 8 set in MOVEQ %#04x", op)
	}
	reg := (op >> 9) & 0x7
	imm := int32(int8(op & 0xFF))
	inst.Mnemonic = m68k.Moveq
	inst.Operands = []m68k.Operand{
		{Kind: m68k.OperandImmediate, Immediate: uint32(imm), ImmediateSize: m68k.SizeLong},
		regDirect(m68k.OperandDataReg, reg),
	}
	return nil
}
