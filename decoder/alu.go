package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeStandardDyadic implements the common shape shared by the
// ADD/SUB/AND/OR/CMP/EOR opcode groups: bits 11..9 select a data
// register, bits 8..6 select an opmode (size plus direction), and bits
// 5..0 select an effective address. Opmodes 000/001/010 read
// size byte/word/long with the EA as source and the register as
// destination; opmodes 100/101/110 reverse that, with the EA as
// (memory-alterable) destination — callers already special-cased
// opmodes 011/111 (the address-register forms) and any instruction-
// specific overlaps (DIVU/DIVS/MULU/MULS/SBCD/ABCD/EXG/CMPA/CMPM/
// SUBA/SUBX/ADDA/ADDX) before falling through here.
func decodeStandardDyadic(c *cursor.Cursor, op uint16, inst *m68k.Instruction, mnem m68k.Mnemonic, cpu m68k.CpuVariant) error {
	dReg := (op >> 9) & 0x7
	opmode := (op >> 6) & 0x7
	mode := (op >> 3) & 0x7
	reg := op & 0x7

	var size m68k.Size
	toMemory := false
	switch opmode {
	case 0:
		size = m68k.SizeByte
	case 1:
		size = m68k.SizeWord
	case 2:
		size = m68k.SizeLong
	case 4:
		size = m68k.SizeByte
		toMemory = true
	case 5:
		size = m68k.SizeWord
		toMemory = true
	case 6:
		size = m68k.SizeLong
		toMemory = true
	default:
		return invalidf("unexpected opmode %d for standard dyadic %#04x", opmode, op)
	}

	ea, err := decodeEA(c, mode, reg, size, cpu)
	if err != nil {
		return err
	}
	inst.Mnemonic = mnem
	inst.Size = size
	inst.HasSize = true
	if toMemory {
		inst.Operands = []m68k.Operand{regDirect(m68k.OperandDataReg, dReg), eaOperand(ea)}
	} else {
		inst.Operands = []m68k.Operand{eaOperand(ea), regDirect(m68k.OperandDataReg, dReg)}
	}
	return nil
}

// decodeAddrForm implements the opmode-011/111 "ea,An" address-register
// forms shared by ADDA/SUBA/CMPA: opmode 011 is word-sized (sign-
// extended internally, but the decoder records the declared size), 111
// is long.
func decodeAddrForm(c *cursor.Cursor, op uint16, inst *m68k.Instruction, mnem m68k.Mnemonic, cpu m68k.CpuVariant) error {
	aReg := (op >> 9) & 0x7
	mode := (op >> 3) & 0x7
	reg := op & 0x7
	size := m68k.SizeWord
	if op&0x0100 != 0 {
		size = m68k.SizeLong
	}
	ea, err := decodeEA(c, mode, reg, size, cpu)
	if err != nil {
		return err
	}
	inst.Mnemonic = mnem
	inst.Size = size
	inst.HasSize = true
	inst.Operands = []m68k.Operand{eaOperand(ea), regDirect(m68k.OperandAddrReg, aReg)}
	return nil
}

// decodeExtendedForm implements the ADDX/SUBX register-vs-predecrement
// shape shared by ADDX/SUBX (and, with a byte-only size, ABCD/SBCD):
// bit3 (R/M) selects data-register (0) or address-register-predecrement
// (1) operand pairs; bits 11..9 and 2..0 name the destination/source
// register in either file.
func decodeExtendedForm(op uint16, inst *m68k.Instruction, mnem m68k.Mnemonic, size m68k.Size) error {
	dst := (op >> 9) & 0x7
	src := op & 0x7
	var srcOperand, dstOperand m68k.Operand
	if op&0x0008 != 0 {
		srcOperand = eaOperand(m68k.EA{Kind: m68k.EAAddrPreDec, Reg: src})
		dstOperand = eaOperand(m68k.EA{Kind: m68k.EAAddrPreDec, Reg: dst})
	} else {
		srcOperand = regDirect(m68k.OperandDataReg, src)
		dstOperand = regDirect(m68k.OperandDataReg, dst)
	}
	inst.Mnemonic = mnem
	if size != m68k.SizeNone {
		inst.Size = size
		inst.HasSize = true
	}
	inst.Operands = []m68k.Operand{srcOperand, dstOperand}
	return nil
}

func decodeMulDiv(c *cursor.Cursor, op uint16, inst *m68k.Instruction, mnem m68k.Mnemonic, cpu m68k.CpuVariant) error {
	dReg := (op >> 9) & 0x7
	mode := (op >> 3) & 0x7
	reg := op & 0x7
	ea, err := decodeEA(c, mode, reg, m68k.SizeWord, cpu)
	if err != nil {
		return err
	}
	inst.Mnemonic = mnem
	inst.Size = m68k.SizeWord
	inst.HasSize = true
	inst.Operands = []m68k.Operand{eaOperand(ea), regDirect(m68k.OperandDataReg, dReg)}
	return nil
}
