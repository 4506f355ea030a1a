package m68k

// EAKind identifies which of the 14 base-68000 addressing-mode variants
// an EA value holds.
type EAKind int

const (
	EAInvalid EAKind = iota
	EADataReg
	EAAddrReg
	EAAddrIndirect
	EAAddrPostInc
	EAAddrPreDec
	EAAddrDisp
	EAAddrIndex
	EAAbsShort
	EAAbsLong
	EAPcDisp
	EAPcIndex
	EAImmediate
)

// IndexRegKind distinguishes the two register files an indexed
// addressing mode's index register may be drawn from.
type IndexRegKind int

const (
	IndexData IndexRegKind = iota
	IndexAddr
)

// IndexRef describes the index register of an indexed or PC-indexed
// effective address.
type IndexRef struct {
	Kind IndexRegKind
	Reg  uint16
	Size Size // SizeWord or SizeLong
	// Scale is the raw 2-bit scale field from the brief extension word.
	// On base 68000 the hardware cannot encode a non-zero scale, but per
	// this module's decoding policy the field is reported as decoded
	// rather than rejected.
	Scale uint16
}

// EA is a tagged effective-address value. Only the fields relevant to
// Kind are meaningful.
type EA struct {
	Kind EAKind
	Reg  uint16 // register number for reg-direct/indirect/displacement/index kinds

	Disp16 int16 // EAAddrDisp, EAPcDisp
	Disp8  int8  // EAAddrIndex, EAPcIndex (brief extension displacement)

	AbsShort uint16 // EAAbsShort (stored pre-sign-extension; callers sign-extend for computation)
	AbsLong  uint32 // EAAbsLong

	Index IndexRef // EAAddrIndex, EAPcIndex

	Immediate     uint32 // EAImmediate
	ImmediateSize Size   // size of the immediate for formatting
}

// OperandKind identifies which of the Instruction model's fixed operand
// kinds an Operand value holds.
type OperandKind int

const (
	OperandInvalid OperandKind = iota
	OperandDataReg
	OperandAddrReg
	OperandEA
	OperandImmediate
	OperandRegList
	OperandQuickImm
	OperandBranchTarget
	OperandCCR
	OperandSR
	OperandUSP
	OperandTrapVector
)

// Operand is a tagged union over an instruction's operand forms.
type Operand struct {
	Kind OperandKind

	Reg uint16 // OperandDataReg, OperandAddrReg

	EA EA // OperandEA

	Immediate     uint32 // OperandImmediate
	ImmediateSize Size

	QuickImm int8 // OperandQuickImm: the decoded value; an encoded ADDQ/SUBQ/shift count of 0 is already stored as 8

	RegList uint16 // OperandRegList: canonical bit0=D0..bit15=A7

	BranchTarget uint32 // OperandBranchTarget: absolute target address

	TrapVector uint8
}

// Instruction is a fully self-contained decoded instruction: it carries
// no references into the source bytes.
type Instruction struct {
	Address     uint32
	RawBytes    []byte
	Mnemonic    Mnemonic
	Size        Size // SizeNone if not applicable
	HasSize     bool
	Condition   Condition
	HasCondition bool
	Operands    []Operand
	LengthBytes int

	// Predecrement records whether a Movem instruction's register-list
	// mask was produced from a predecrement destination (-(An)). The
	// mask itself is always stored in canonical bit0=D0..bit15=A7 order;
	// this flag is informational context for formatting, not something
	// the formatter reverses again.
	Predecrement bool

	CpuRequired CpuVariant
}
