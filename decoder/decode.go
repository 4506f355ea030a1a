package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// Decode decodes a single instruction from payload starting at byte
// offset at. base is the hunk's assumed load address (0 for a linear
// listing); both are used to compute absolute branch targets. It
// returns the decoded instruction and the number of bytes consumed.
//
// The decoder never advances past any unmatched pattern beyond the two
// opcode bytes: callers rely on this to make forward progress after an
// error.
func Decode(payload []byte, at uint32, base uint32, cpu m68k.CpuVariant) (*m68k.Instruction, int, error) {
	if int(at) > len(payload) {
		return nil, 0, ErrTruncated
	}
	c := cursor.New(payload[at:])

	op, err := c.ReadU16()
	if err != nil {
		return nil, 0, err
	}

	inst := &m68k.Instruction{
		Address:     base + at,
		CpuRequired: m68k.Cpu68000,
	}

	var decodeErr error
	switch op >> 12 {
	case 0x0:
		decodeErr = decodeGroup0(c, op, inst)
	case 0x1, 0x2, 0x3:
		decodeErr = decodeMove(c, op, inst, cpu)
	case 0x4:
		decodeErr = decodeGroup4(c, op, inst, cpu)
	case 0x5:
		decodeErr = decodeGroup5(c, op, inst, cpu)
	case 0x6:
		decodeErr = decodeGroup6(c, op, inst)
	case 0x7:
		decodeErr = decodeMoveq(op, inst)
	case 0x8:
		decodeErr = decodeGroup8(c, op, inst, cpu)
	case 0x9:
		decodeErr = decodeGroup9(c, op, inst, cpu)
	case 0xA:
		decodeErr = decodeDcWord(op, inst)
	case 0xB:
		decodeErr = decodeGroupB(c, op, inst, cpu)
	case 0xC:
		decodeErr = decodeGroupC(c, op, inst, cpu)
	case 0xD:
		decodeErr = decodeGroupD(c, op, inst, cpu)
	case 0xE:
		decodeErr = decodeGroupE(c, op, inst, cpu)
	default: // 0xF
		decodeErr = decodeDcWord(op, inst)
	}

	if decodeErr != nil {
		return nil, 0, decodeErr
	}

	inst.LengthBytes = c.Position()
	inst.RawBytes = append([]byte(nil), payload[at:at+uint32(inst.LengthBytes)]...)
	return inst, inst.LengthBytes, nil
}

// decodeDcWord is the Group A / Group F fallback: unassigned or
// coprocessor opcode space is represented as a data-constant word so the
// listing pipeline stays a uniform value stream with no separate
// decode-failed path.
func decodeDcWord(op uint16, inst *m68k.Instruction) error {
	inst.Mnemonic = m68k.Dc
	inst.Operands = []m68k.Operand{{Kind: m68k.OperandImmediate, Immediate: uint32(op), ImmediateSize: m68k.SizeWord}}
	return nil
}

// sizeFromBits00 decodes the common 2-bit size field (00 byte, 01 word,
// 10 long; 11 is reserved/invalid for this field's callers).
func sizeFromBits00(bits uint16) (m68k.Size, bool) {
	switch bits & 0x3 {
	case 0:
		return m68k.SizeByte, true
	case 1:
		return m68k.SizeWord, true
	case 2:
		return m68k.SizeLong, true
	default:
		return m68k.SizeNone, false
	}
}

func regDirect(kind m68k.OperandKind, reg uint16) m68k.Operand {
	return m68k.Operand{Kind: kind, Reg: reg}
}

func eaOperand(ea m68k.EA) m68k.Operand {
	return m68k.Operand{Kind: m68k.OperandEA, EA: ea}
}
