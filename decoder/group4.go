package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroup4 handles opcode words with high nibble 0100: the
// miscellaneous group (NEG/NEGX/NOT/CLR/TST/TAS/EXT/SWAP/PEA/LEA/JMP/
// JSR/MOVEM/CHK/TRAP/LINK/UNLK/RESET/NOP/STOP/RTE/RTS/TRAPV/RTR/ILLEGAL),
// plus the MOVE-from/to-SR and MOVE-to/from-USP forms that share this
// opcode space. Patterns are checked most-specific first: exact no-
// operand opcodes, then fixed-prefix families, then the general unary
// op family.
func decodeGroup4(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	switch op {
	case 0x4E70:
		inst.Mnemonic = m68k.Reset
		return nil
	case 0x4E71:
		inst.Mnemonic = m68k.Nop
		return nil
	case 0x4E72:
		_, err := c.ReadU16() // sr immediate operand for STOP, unrendered beyond spec scope
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Stop
		return nil
	case 0x4E73:
		inst.Mnemonic = m68k.Rte
		return nil
	case 0x4E75:
		inst.Mnemonic = m68k.Rts
		return nil
	case 0x4E76:
		inst.Mnemonic = m68k.Trapv
		return nil
	case 0x4E77:
		inst.Mnemonic = m68k.Rtr
		return nil
	case 0x4AFC:
		inst.Mnemonic = m68k.Illegal
		return nil
	}
	if op&0xFFF8 == 0x4E68 {
		inst.Mnemonic = m68k.MoveFromUSP
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandAddrReg, op&0x7)}
		return nil
	}
	if op&0xFFF8 == 0x4E60 {
		inst.Mnemonic = m68k.MoveToUSP
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandAddrReg, op&0x7)}
		return nil
	}

	if op&0xFFF8 == 0x4E50 {
		disp, err := c.ReadI16()
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Link
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandAddrReg, op&0x7), {Kind: m68k.OperandImmediate, Immediate: uint32(uint16(disp)), ImmediateSize: m68k.SizeWord}}
		return nil
	}
	if op&0xFFF8 == 0x4E58 {
		inst.Mnemonic = m68k.Unlk
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandAddrReg, op&0x7)}
		return nil
	}
	if op&0xFFF0 == 0x4E40 {
		inst.Mnemonic = m68k.Trap
		inst.Operands = []m68k.Operand{{Kind: m68k.OperandTrapVector, TrapVector: uint8(op & 0xF)}}
		return nil
	}

	mode := (op >> 3) & 0x7
	reg := op & 0x7

	if op&0xF1C0 == 0x41C0 { // LEA (base 0x41C0 with destination reg OR'd into bits 11..9)
		ea, err := decodeEA(c, mode, reg, m68k.SizeLong, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Lea
		inst.Operands = []m68k.Operand{eaOperand(ea), regDirect(m68k.OperandAddrReg, (op>>9)&0x7)}
		return nil
	}
	if op&0xF1C0 == 0x4180 { // CHK
		ea, err := decodeEA(c, mode, reg, m68k.SizeWord, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Chk
		inst.Size = m68k.SizeWord
		inst.HasSize = true
		inst.Operands = []m68k.Operand{eaOperand(ea), regDirect(m68k.OperandDataReg, (op>>9)&0x7)}
		return nil
	}
	if op&0xFFC0 == 0x4800 && mode != modeAddr { // NBCD (mode 1 is not a valid NBCD form and falls through)
		ea, err := decodeEA(c, mode, reg, m68k.SizeByte, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Nbcd
		inst.Operands = []m68k.Operand{eaOperand(ea)}
		return nil
	}
	if op&0xFFB8 == 0x4880 && mode == modeData { // EXT (opmode bit6: 0=word,1=long)
		size := m68k.SizeWord
		if op&0x0040 != 0 {
			size = m68k.SizeLong
		}
		inst.Mnemonic = m68k.Ext
		inst.Size = size
		inst.HasSize = true
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandDataReg, reg)}
		return nil
	}
	if op&0xFFF8 == 0x4840 { // SWAP
		inst.Mnemonic = m68k.Swap
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandDataReg, reg)}
		return nil
	}
	if op&0xFFC0 == 0x4840 { // PEA
		ea, err := decodeEA(c, mode, reg, m68k.SizeLong, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Pea
		inst.Operands = []m68k.Operand{eaOperand(ea)}
		return nil
	}
	if op&0xFFC0 == 0x4AC0 { // TAS
		ea, err := decodeEA(c, mode, reg, m68k.SizeByte, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Tas
		inst.Operands = []m68k.Operand{eaOperand(ea)}
		return nil
	}
	if op&0xFB80 == 0x4880 { // MOVEM (bit 10 selects the transfer direction)
		return decodeMovem(c, op, inst, mode, reg, cpu)
	}
	if op&0xFFC0 == 0x40C0 { // MOVE from SR
		ea, err := decodeEA(c, mode, reg, m68k.SizeWord, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.MoveFromSR
		inst.Operands = []m68k.Operand{{Kind: m68k.OperandSR}, eaOperand(ea)}
		return nil
	}
	if op&0xFFC0 == 0x44C0 { // MOVE to CCR
		ea, err := decodeEA(c, mode, reg, m68k.SizeWord, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.MoveToCCR
		inst.Operands = []m68k.Operand{eaOperand(ea), {Kind: m68k.OperandCCR}}
		return nil
	}
	if op&0xFFC0 == 0x46C0 { // MOVE to SR
		ea, err := decodeEA(c, mode, reg, m68k.SizeWord, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.MoveToSR
		inst.Operands = []m68k.Operand{eaOperand(ea), {Kind: m68k.OperandSR}}
		return nil
	}
	if op&0xFFC0 == 0x4EC0 { // JMP
		ea, err := decodeEA(c, mode, reg, m68k.SizeNone, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Jmp
		inst.Operands = []m68k.Operand{eaOperand(ea)}
		return nil
	}
	if op&0xFFC0 == 0x4E80 { // JSR
		ea, err := decodeEA(c, mode, reg, m68k.SizeNone, cpu)
		if err != nil {
			return err
		}
		inst.Mnemonic = m68k.Jsr
		inst.Operands = []m68k.Operand{eaOperand(ea)}
		return nil
	}

	// General unary family: NEGX/CLR/NEG/NOT/TST, base selected by bits
	// 11..8, size by bits 7..6.
	size, sizeOK := sizeFromBits00(op >> 6)
	var mnem m68k.Mnemonic
	switch (op >> 8) & 0xF {
	case 0x0:
		mnem = m68k.Negx
	case 0x2:
		mnem = m68k.Clr
	case 0x4:
		mnem = m68k.Neg
	case 0x6:
		mnem = m68k.Not
	case 0xA:
		mnem = m68k.Tst
	default:
		return invalidf("reserved group4 pattern %#04x", op)
	}
	if !sizeOK {
		return invalidf("reserved size field in %#04x", op)
	}
	ea, err := decodeEA(c, mode, reg, size, cpu)
	if err != nil {
		return err
	}
	inst.Mnemonic = mnem
	inst.Size = size
	inst.HasSize = true
	inst.Operands = []m68k.Operand{eaOperand(ea)}
	return nil
}

// decodeMovem decodes the MOVEM register-list mask and EA, normalizing
// the mask to a canonical bit0=D0..bit15=A7 representation regardless of
// transfer direction or addressing mode. If the effective address is
// predecrement (-(An)), the mask as encoded runs bit0=A7..bit15=D0 and is
// reversed here, once, so every consumer downstream sees the same bit
// layout; Instruction.Predecrement records that this reversal happened.
func decodeMovem(c *cursor.Cursor, op uint16, inst *m68k.Instruction, mode, reg uint16, cpu m68k.CpuVariant) error {
	mask, err := c.ReadU16()
	if err != nil {
		return err
	}
	size := m68k.SizeWord
	if op&0x0040 != 0 {
		size = m68k.SizeLong
	}
	toMemory := op&0x0400 == 0

	ea, err := decodeEA(c, mode, reg, size, cpu)
	if err != nil {
		return err
	}

	predecrement := toMemory && ea.Kind == m68k.EAAddrPreDec
	canonical := mask
	if predecrement {
		canonical = reverseBits16(mask)
	}

	inst.Mnemonic = m68k.Movem
	inst.Size = size
	inst.HasSize = true
	inst.Predecrement = predecrement
	regListOp := m68k.Operand{Kind: m68k.OperandRegList, RegList: canonical}
	if toMemory {
		inst.Operands = []m68k.Operand{regListOp, eaOperand(ea)}
	} else {
		inst.Operands = []m68k.Operand{eaOperand(ea), regListOp}
	}
	return nil
}

func reverseBits16(v uint16) uint16 {
	var out uint16
	for i := 0; i < 16; i++ {
		if v&(1<<uint(i)) != 0 {
			out |= 1 << uint(15-i)
		}
	}
	return out
}
