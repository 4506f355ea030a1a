package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroup0 handles opcode words with high nibble 0000: the
// immediate-operand family (ORI/ANDI/SUBI/ADDI/EORI/CMPI, and their
// to-CCR/to-SR special cases), static and dynamic bit manipulation
// (BTST/BCHG/BCLR/BSET), and MOVEP.
func decodeGroup0(c *cursor.Cursor, op uint16, inst *m68k.Instruction) error {
	mode := (op >> 3) & 0x7
	reg := op & 0x7

	if op&0x0100 != 0 {
		if mode == modeAddr {
			return decodeMovep(c, op, inst, reg)
		}
		return decodeDynamicBitOp(c, op, inst, mode, reg)
	}

	switch (op >> 8) & 0xF {
	case 0x8: // static bit op
		return decodeStaticBitOp(c, op, inst, mode, reg)
	case 0x0, 0x2, 0x4, 0x6, 0xA, 0xC:
		return decodeImmediateOp(c, op, inst, mode, reg)
	case 0xE:
		// bits 11..9 == 0b111: CAS/CHK2/CMP2 on the 68020+, reserved on
		// the base 68000 this decoder targets.
		return decodeDcWord(op, inst)
	default:
		return invalidf("reserved group0 pattern %#04x", op)
	}
}

func immediateFamily(op uint16) (m68k.Mnemonic, m68k.Mnemonic, m68k.Mnemonic) {
	// returns (plain, toCCR, toSR) mnemonics for the family selected by
	// bits 11..8.
	switch (op >> 8) & 0xF {
	case 0x0:
		return m68k.Ori, m68k.OriToCCR, m68k.OriToSR
	case 0x2:
		return m68k.Andi, m68k.AndiToCCR, m68k.AndiToSR
	case 0x4:
		return m68k.Subi, m68k.MnemonicInvalid, m68k.MnemonicInvalid
	case 0x6:
		return m68k.Addi, m68k.MnemonicInvalid, m68k.MnemonicInvalid
	case 0xA:
		return m68k.Eori, m68k.EoriToCCR, m68k.EoriToSR
	case 0xC:
		return m68k.Cmpi, m68k.MnemonicInvalid, m68k.MnemonicInvalid
	default:
		return m68k.MnemonicInvalid, m68k.MnemonicInvalid, m68k.MnemonicInvalid
	}
}

func decodeImmediateOp(c *cursor.Cursor, op uint16, inst *m68k.Instruction, mode, reg uint16) error {
	size, ok := sizeFromBits00(op >> 6)
	if !ok {
		return invalidf("reserved size field in immediate op %#04x", op)
	}
	plain, toCCR, toSR := immediateFamily(op)

	immEA, err := decodeImmediateEA(c, size)
	if err != nil {
		return err
	}

	if mode == modeOther && reg == regImmediate {
		switch size {
		case m68k.SizeByte:
			if toCCR != m68k.MnemonicInvalid {
				inst.Mnemonic = toCCR
				inst.Operands = []m68k.Operand{
					{Kind: m68k.OperandImmediate, Immediate: immEA.Immediate, ImmediateSize: size},
					{Kind: m68k.OperandCCR},
				}
				return nil
			}
		case m68k.SizeWord:
			if toSR != m68k.MnemonicInvalid {
				inst.Mnemonic = toSR
				inst.Operands = []m68k.Operand{
					{Kind: m68k.OperandImmediate, Immediate: immEA.Immediate, ImmediateSize: size},
					{Kind: m68k.OperandSR},
				}
				return nil
			}
		}
	}

	destEA, err := decodeEA(c, mode, reg, size, m68k.Cpu68000)
	if err != nil {
		return err
	}
	inst.Mnemonic = plain
	inst.Size = size
	inst.HasSize = true
	inst.Operands = []m68k.Operand{
		{Kind: m68k.OperandImmediate, Immediate: immEA.Immediate, ImmediateSize: size},
		eaOperand(destEA),
	}
	return nil
}

func decodeStaticBitOp(c *cursor.Cursor, op uint16, inst *m68k.Instruction, mode, reg uint16) error {
	bitNumWord, err := c.ReadU16()
	if err != nil {
		return err
	}
	destEA, err := decodeEA(c, mode, reg, m68k.SizeByte, m68k.Cpu68000)
	if err != nil {
		return err
	}
	inst.Mnemonic = bitOpMnemonic((op >> 6) & 0x3)
	inst.Operands = []m68k.Operand{
		{Kind: m68k.OperandQuickImm, QuickImm: int8(bitNumWord & 0xFF)},
		eaOperand(destEA),
	}
	return nil
}

func decodeDynamicBitOp(c *cursor.Cursor, op uint16, inst *m68k.Instruction, mode, reg uint16) error {
	destEA, err := decodeEA(c, mode, reg, m68k.SizeByte, m68k.Cpu68000)
	if err != nil {
		return err
	}
	inst.Mnemonic = bitOpMnemonic((op >> 6) & 0x3)
	inst.Operands = []m68k.Operand{
		regDirect(m68k.OperandDataReg, (op>>9)&0x7),
		eaOperand(destEA),
	}
	return nil
}

func bitOpMnemonic(oo uint16) m68k.Mnemonic {
	switch oo {
	case 0:
		return m68k.Btst
	case 1:
		return m68k.Bchg
	case 2:
		return m68k.Bclr
	default:
		return m68k.Bset
	}
}

func decodeMovep(c *cursor.Cursor, op uint16, inst *m68k.Instruction, addrReg uint16) error {
	disp, err := c.ReadI16()
	if err != nil {
		return err
	}
	dReg := (op >> 9) & 0x7
	opmode := (op >> 6) & 0x3
	size := m68k.SizeWord
	if opmode&1 == 1 {
		size = m68k.SizeLong
	}
	mem := m68k.EA{Kind: m68k.EAAddrDisp, Reg: addrReg, Disp16: disp}
	inst.Mnemonic = m68k.Movep
	inst.Size = size
	inst.HasSize = true
	if opmode >= 2 {
		// register to memory
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandDataReg, dReg), eaOperand(mem)}
	} else {
		// memory to register
		inst.Operands = []m68k.Operand{eaOperand(mem), regDirect(m68k.OperandDataReg, dReg)}
	}
	return nil
}
