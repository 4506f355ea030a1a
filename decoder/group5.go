package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroup5 handles opcode words with high nibble 0101: ADDQ, SUBQ,
// Scc, and DBcc. The size field being the reserved value 11 selects the
// Scc/DBcc family instead of a quick arithmetic op; within that family,
// an address-register-direct destination mode means DBcc, any other
// destination mode means Scc.
func decodeGroup5(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	mode := (op >> 3) & 0x7
	reg := op & 0x7
	sizeBits := (op >> 6) & 0x3

	if sizeBits == 0x3 {
		cond := m68k.ConditionFromBits(op >> 8)
		if mode == modeAddr {
			disp, err := c.ReadI16()
			if err != nil {
				return err
			}
			inst.Mnemonic = m68k.Dbcc
			inst.Condition = cond
			inst.HasCondition = true
			inst.Operands = []m68k.Operand{
				regDirect(m68k.OperandDataReg, reg),
				{Kind: m68k.OperandBranchTarget, BranchTarget: uint32(int32(inst.Address) + 2 + int32(disp))},
			}
			return nil
		}
		ea, err := decodeEA(c, mode, reg, m68k.SizeByte, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Scc
		inst.Condition = cond
		inst.HasCondition = true
		inst.Operands = []m68k.Operand{eaOperand(ea)}
		return nil
	}

	size, ok := sizeFromBits00(sizeBits)
	if !ok {
		return invalidf("reserved size in quick op %#04x", op)
	}
	ea, err := decodeEA(c, mode, reg, size, cpu)
	if err != nil {
		return err
	}
	quick := (op >> 9) & 0x7
	qv := int8(quick)
	if quick == 0 {
		qv = 8
	}
	mnem := m68k.Addq
	if op&0x0100 != 0 {
		mnem = m68k.Subq
	}
	inst.Mnemonic = mnem
	inst.Size = size
	inst.HasSize = true
	inst.Operands = []m68k.Operand{{Kind: m68k.OperandQuickImm, QuickImm: qv}, eaOperand(ea)}
	return nil
}
