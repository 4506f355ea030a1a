package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroup6 handles opcode words with high nibble 0110: BRA, BSR, and
// the fourteen Bcc variants. The low byte of the opcode word is an 8-bit
// displacement; 0x00 means a 16-bit displacement word follows, and 0xFF
// is reserved for the 68020+ 32-bit branch-displacement form, which is
// Unsupported on the base 68000.
func decodeGroup6(c *cursor.Cursor, op uint16, inst *m68k.Instruction) error {
	condBits := (op >> 8) & 0xF
	dispByte := op & 0xFF

	var disp int32
	switch dispByte {
	case 0x00:
		d, err := c.ReadI16()
		if err != nil {
			return err
		}
		disp = int32(d)
	case 0xFF:
		return unsupportedf("32-bit branch displacement requires 68020+")
	default:
		disp = int32(int8(dispByte))
	}

	target := uint32(int32(inst.Address) + 2 + disp)

	switch condBits {
	case 0x0:
		inst.Mnemonic = m68k.Bra
	case 0x1:
		inst.Mnemonic = m68k.Bsr
	default:
		inst.Mnemonic = m68k.Bcc
		inst.Condition = m68k.ConditionFromBits(condBits)
		inst.HasCondition = true
	}
	inst.Operands = []m68k.Operand{{Kind: m68k.OperandBranchTarget, BranchTarget: target}}
	return nil
}
