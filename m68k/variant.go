package m68k

// CpuVariant selects which CPU generation's encodings the decoder
// accepts. The base decoder targets M68000; newer variants are accepted
// by the type so that support for their additional encodings (full
// extension words, 32-bit branch displacement, scaled index > 1,
// bit-field operations) can be added later without changing the
// decoder's signature. The decoder handles these forms the same way
// whatever variant is named: full extension words, the 32-bit branch
// displacement and mode 7 registers 5..7 are Unsupported, bit-field
// opcode space decodes as a dc.w word, and a non-zero index scale is
// reported as decoded.
type CpuVariant int

const (
	CpuInvalid CpuVariant = iota
	Cpu68000
	Cpu68010
	Cpu68020
	Cpu68030
	Cpu68040
	Cpu68060
)

func (v CpuVariant) String() string {
	switch v {
	case Cpu68000:
		return "68000"
	case Cpu68010:
		return "68010"
	case Cpu68020:
		return "68020"
	case Cpu68030:
		return "68030"
	case Cpu68040:
		return "68040"
	case Cpu68060:
		return "68060"
	default:
		return "invalid"
	}
}

// ParseCpuVariant maps a CLI-style variant string to a CpuVariant.
func ParseCpuVariant(s string) (CpuVariant, bool) {
	switch s {
	case "68000":
		return Cpu68000, true
	case "68010":
		return Cpu68010, true
	case "68020":
		return Cpu68020, true
	case "68030":
		return Cpu68030, true
	case "68040":
		return Cpu68040, true
	case "68060":
		return Cpu68060, true
	default:
		return CpuInvalid, false
	}
}
