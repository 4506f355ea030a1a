package format

import (
	"fmt"
	"strings"

	"github.com/dis68k/dis68k/m68k"
)

// Format renders a decoded instruction as one line of Motorola-syntax
// assembly text (no trailing newline, no address or byte-dump columns —
// those are the listing generator's job).
func Format(inst *m68k.Instruction, opts Options) string {
	if inst.Mnemonic == m68k.Dc {
		op := inst.Operands[0]
		return FormatDc(op.Immediate, op.ImmediateSize)
	}
	mnem := mnemonicText(inst, opts)
	operands := formatOperandList(inst)
	if operands == "" {
		return mnem
	}
	return fmt.Sprintf("%-8s %s", mnem, operands)
}

func mnemonicText(inst *m68k.Instruction, opts Options) string {
	var b strings.Builder
	b.WriteString(inst.Mnemonic.Name())
	if inst.Mnemonic.IsConditional() && inst.HasCondition {
		b.WriteString(inst.Condition.Suffix())
	}
	if inst.HasSize && !inst.Mnemonic.SuppressesSizeSuffix() {
		b.WriteString(inst.Size.Suffix())
	}
	text := b.String()
	if opts.Uppercase {
		return strings.ToUpper(text)
	}
	return text
}

// formatOperandList applies the small set of instruction-level rendering
// rules that can't be decided from a single Operand in isolation, then
// falls back to formatOperand per operand.
func formatOperandList(inst *m68k.Instruction) string {
	switch inst.Mnemonic {
	case m68k.Moveq:
		// MOVEQ's immediate is conventionally rendered decimal, not hex:
		// the sign-extended byte value is small and hex obscures it.
		imm := int32(inst.Operands[0].Immediate)
		return fmt.Sprintf("#%d,%s", imm, formatOperand(inst.Operands[1]))
	case m68k.MoveFromUSP:
		return fmt.Sprintf("usp,%s", formatOperand(inst.Operands[0]))
	case m68k.MoveToUSP:
		return fmt.Sprintf("%s,usp", formatOperand(inst.Operands[0]))
	}

	if len(inst.Operands) == 0 {
		return ""
	}
	parts := make([]string, len(inst.Operands))
	for i, op := range inst.Operands {
		parts[i] = formatOperand(op)
	}
	return strings.Join(parts, ",")
}

// FormatDc renders the decoder's Dc fallback operand the way the listing
// generator expects: "dc.w    $XXXX" (or "dc.b $XX" for a single
// trailing byte, constructed by the caller with a byte-sized operand).
func FormatDc(value uint32, size m68k.Size) string {
	mnem := "dc" + size.Suffix()
	return fmt.Sprintf("%-8s$%0*x", mnem, hexDigits(size), value)
}
