package decoder

import (
	"github.com/dis68k/dis68k/cursor"
	"github.com/dis68k/dis68k/m68k"
)

// Addressing mode field constants (3-bit mode, 3-bit register).
const (
	modeData        uint16 = 0
	modeAddr        uint16 = 1
	modeAddrInd     uint16 = 2
	modeAddrPostInc uint16 = 3
	modeAddrPreDec  uint16 = 4
	modeAddrDisp    uint16 = 5
	modeAddrIndex   uint16 = 6
	modeOther       uint16 = 7

	regAbsShort  uint16 = 0
	regAbsLong   uint16 = 1
	regPCDisp    uint16 = 2
	regPCIndex   uint16 = 3
	regImmediate uint16 = 4
)

// decodeEA reads the bytes implied by (mode, reg) plus any brief index
// extension word, advancing c accordingly, and returns the corresponding
// EA value. size is the operand size in effect, used only to size an
// immediate operand; an index register's size comes from bit 11 of the
// brief extension word itself.
func decodeEA(c *cursor.Cursor, mode, reg uint16, size m68k.Size, cpu m68k.CpuVariant) (m68k.EA, error) {
	switch mode {
	case modeData:
		return m68k.EA{Kind: m68k.EADataReg, Reg: reg}, nil
	case modeAddr:
		return m68k.EA{Kind: m68k.EAAddrReg, Reg: reg}, nil
	case modeAddrInd:
		return m68k.EA{Kind: m68k.EAAddrIndirect, Reg: reg}, nil
	case modeAddrPostInc:
		return m68k.EA{Kind: m68k.EAAddrPostInc, Reg: reg}, nil
	case modeAddrPreDec:
		return m68k.EA{Kind: m68k.EAAddrPreDec, Reg: reg}, nil
	case modeAddrDisp:
		disp, err := c.ReadI16()
		if err != nil {
			return m68k.EA{}, err
		}
		return m68k.EA{Kind: m68k.EAAddrDisp, Reg: reg, Disp16: disp}, nil
	case modeAddrIndex:
		idx, disp, err := decodeBriefExtension(c, cpu)
		if err != nil {
			return m68k.EA{}, err
		}
		return m68k.EA{Kind: m68k.EAAddrIndex, Reg: reg, Index: idx, Disp8: disp}, nil
	case modeOther:
		switch reg {
		case regAbsShort:
			v, err := c.ReadU16()
			if err != nil {
				return m68k.EA{}, err
			}
			return m68k.EA{Kind: m68k.EAAbsShort, AbsShort: v}, nil
		case regAbsLong:
			v, err := c.ReadU32()
			if err != nil {
				return m68k.EA{}, err
			}
			return m68k.EA{Kind: m68k.EAAbsLong, AbsLong: v}, nil
		case regPCDisp:
			disp, err := c.ReadI16()
			if err != nil {
				return m68k.EA{}, err
			}
			return m68k.EA{Kind: m68k.EAPcDisp, Disp16: disp}, nil
		case regPCIndex:
			idx, disp, err := decodeBriefExtension(c, cpu)
			if err != nil {
				return m68k.EA{}, err
			}
			return m68k.EA{Kind: m68k.EAPcIndex, Index: idx, Disp8: disp}, nil
		case regImmediate:
			return decodeImmediateEA(c, size)
		default:
			// reg 5..7 of mode 7 are reserved for 68020+ forms.
			return m68k.EA{}, unsupportedf("mode 7 reg %d reserved for 68020+", reg)
		}
	default:
		return m68k.EA{}, invalidf("impossible mode %d", mode)
	}
}

// decodeImmediateEA reads an immediate operand. Byte-sized immediates
// still occupy a 16-bit extension word; the low 8 bits are the value and
// the high 8 bits are ignored.
func decodeImmediateEA(c *cursor.Cursor, size m68k.Size) (m68k.EA, error) {
	switch size {
	case m68k.SizeByte:
		v, err := c.ReadU16()
		if err != nil {
			return m68k.EA{}, err
		}
		return m68k.EA{Kind: m68k.EAImmediate, Immediate: uint32(v & 0xFF), ImmediateSize: size}, nil
	case m68k.SizeWord:
		v, err := c.ReadU16()
		if err != nil {
			return m68k.EA{}, err
		}
		return m68k.EA{Kind: m68k.EAImmediate, Immediate: uint32(v), ImmediateSize: size}, nil
	case m68k.SizeLong:
		v, err := c.ReadU32()
		if err != nil {
			return m68k.EA{}, err
		}
		return m68k.EA{Kind: m68k.EAImmediate, Immediate: v, ImmediateSize: size}, nil
	default:
		return m68k.EA{}, invalidf("immediate requires a declared size")
	}
}

// decodeBriefExtension reads the brief index extension word used by
// indexed addressing modes (mode 6 and mode 7/reg 3).
//
// Layout: bit15 = data(0)/address(1) register selector; bits14..12 =
// register number; bit11 = word(0)/long(1) index size; bits10..9 =
// scale (reported as decoded, not validated — the 68000 cannot encode a
// non-zero value here but this module does not treat that as an error);
// bit8 = reserved on base 68000 (1 selects the 68020+ full extension
// format, Unsupported here); bits7..0 = signed 8-bit displacement.
func decodeBriefExtension(c *cursor.Cursor, cpu m68k.CpuVariant) (m68k.IndexRef, int8, error) {
	ext, err := c.ReadU16()
	if err != nil {
		return m68k.IndexRef{}, 0, err
	}
	if ext&0x0100 != 0 {
		return m68k.IndexRef{}, 0, unsupportedf("full extension word format requires 68020+")
	}
	kind := m68k.IndexData
	if ext&0x8000 != 0 {
		kind = m68k.IndexAddr
	}
	regNum := (ext >> 12) & 0x7
	idxSize := m68k.SizeWord
	if ext&0x0800 != 0 {
		idxSize = m68k.SizeLong
	}
	scale := (ext >> 9) & 0x3
	disp := int8(ext & 0xFF)
	return m68k.IndexRef{Kind: kind, Reg: regNum, Size: idxSize, Scale: scale}, disp, nil
}
