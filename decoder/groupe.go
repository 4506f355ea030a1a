package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// decodeGroupE handles opcode words with high nibble 1110: the shift and
// rotate family (ASL/ASR, LSL/LSR, ROXL/ROXR, ROL/ROR). Two distinct
// encodings share this nibble: a register form shifting a data register
// by an immediate count or another register's value, and a memory form
// that always shifts a word-sized effective address by one bit. The
// memory form is recognized by bits 7..6 both set, a size value (11)
// the register form never uses. Bit 11 set in that same memory-form
// space is reserved for 68020+ bit-field instructions (BFTST, BFEXTU,
// etc.), which this module does not decode.
func decodeGroupE(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	if op&0x00C0 == 0x00C0 {
		if op&0x0800 != 0 {
			// Bit-field instruction (BFTST, BFEXTU, ...): requires
			// 68020+. This decoder only targets the base 68000, so it
			// always falls back to a data word, matching the
			// CPU-gated decode_bitfield fallback.
			return decodeDcWord(op, inst)
		}
		return decodeMemoryShift(c, op, inst, cpu)
	}
	return decodeRegisterShift(op, inst)
}

func shiftMnemonic(typ uint16, left bool) m68k.Mnemonic {
	switch typ {
	case 0:
		if left {
			return m68k.Asl
		}
		return m68k.Asr
	case 1:
		if left {
			return m68k.Lsl
		}
		return m68k.Lsr
	case 2:
		if left {
			return m68k.Roxl
		}
		return m68k.Roxr
	default:
		if left {
			return m68k.Rol
		}
		return m68k.Ror
	}
}

func decodeMemoryShift(c *cursor.Cursor, op uint16, inst *m68k.Instruction, cpu m68k.CpuVariant) error {
	typ := (op >> 9) & 0x3
	left := op&0x0100 != 0
	mode := (op >> 3) & 0x7
	reg := op & 0x7
	ea, err := decodeEA(c, mode, reg, m68k.SizeWord, cpu)
	if err != nil {
		return err
	}
	inst.Mnemonic = shiftMnemonic(typ, left)
	inst.Size = m68k.SizeWord
	inst.HasSize = true
	inst.Operands = []m68k.Operand{eaOperand(ea)}
	return nil
}

func decodeRegisterShift(op uint16, inst *m68k.Instruction) error {
	size, ok := sizeFromBits00(op >> 6)
	if !ok {
		return invalidf("reserved size field in shift/rotate %#04x", op)
	}
	left := op&0x0100 != 0
	typ := (op >> 3) & 0x3
	reg := op & 0x7
	countOrReg := (op >> 9) & 0x7

	inst.Mnemonic = shiftMnemonic(typ, left)
	inst.Size = size
	inst.HasSize = true
	if op&0x0020 != 0 {
		inst.Operands = []m68k.Operand{
			regDirect(m68k.OperandDataReg, countOrReg),
			regDirect(m68k.OperandDataReg, reg),
		}
		return nil
	}
	count := countOrReg
	if count == 0 {
		count = 8
	}
	inst.Operands = []m68k.Operand{
		{Kind: m68k.OperandQuickImm, QuickImm: int8(count)},
		regDirect(m68k.OperandDataReg, reg),
	}
	return nil
}
