package format

import (
	"fmt"

	"github.com/dis68k/dis68k/m68k"
)

// hexDigits returns the rendered digit count for a size per spec: 2 for
// byte, 4 for word, 8 for long.
func hexDigits(size m68k.Size) int {
	switch size {
	case m68k.SizeByte:
		return 2
	case m68k.SizeLong:
		return 8
	default:
		return 4
	}
}

func formatEA(ea m68k.EA) string {
	switch ea.Kind {
	case m68k.EADataReg:
		return dataReg(ea.Reg)
	case m68k.EAAddrReg:
		return addrReg(ea.Reg)
	case m68k.EAAddrIndirect:
		return fmt.Sprintf("(%s)", addrReg(ea.Reg))
	case m68k.EAAddrPostInc:
		return fmt.Sprintf("(%s)+", addrReg(ea.Reg))
	case m68k.EAAddrPreDec:
		return fmt.Sprintf("-(%s)", addrReg(ea.Reg))
	case m68k.EAAddrDisp:
		return fmt.Sprintf("(%d,%s)", ea.Disp16, addrReg(ea.Reg))
	case m68k.EAAddrIndex:
		return fmt.Sprintf("(%d,%s,%s.%s)", ea.Disp8, addrReg(ea.Reg), indexRegName(ea.Index.Kind, ea.Index.Reg), ea.Index.Size.Suffix()[1:])
	case m68k.EAAbsShort:
		return fmt.Sprintf("($%0*x).w", hexDigits(m68k.SizeWord), ea.AbsShort)
	case m68k.EAAbsLong:
		return fmt.Sprintf("($%0*x).l", hexDigits(m68k.SizeLong), ea.AbsLong)
	case m68k.EAPcDisp:
		return fmt.Sprintf("(%d,pc)", ea.Disp16)
	case m68k.EAPcIndex:
		return fmt.Sprintf("(%d,pc,%s.%s)", ea.Disp8, indexRegName(ea.Index.Kind, ea.Index.Reg), ea.Index.Size.Suffix()[1:])
	case m68k.EAImmediate:
		return fmt.Sprintf("#$%0*x", hexDigits(ea.ImmediateSize), ea.Immediate)
	default:
		return "?"
	}
}

// formatOperand renders a single operand in isolation. Instruction-level
// context (MOVEQ's decimal immediate, MOVE-to/from-USP's literal "usp")
// is handled by the caller in formatter.go before falling back here.
func formatOperand(op m68k.Operand) string {
	switch op.Kind {
	case m68k.OperandDataReg:
		return dataReg(op.Reg)
	case m68k.OperandAddrReg:
		return addrReg(op.Reg)
	case m68k.OperandEA:
		return formatEA(op.EA)
	case m68k.OperandImmediate:
		return fmt.Sprintf("#$%0*x", hexDigits(op.ImmediateSize), op.Immediate)
	case m68k.OperandRegList:
		return regList(op.RegList)
	case m68k.OperandQuickImm:
		return fmt.Sprintf("#%d", op.QuickImm)
	case m68k.OperandBranchTarget:
		return fmt.Sprintf("$%0*X", hexDigits(m68k.SizeLong), op.BranchTarget)
	case m68k.OperandCCR:
		return "ccr"
	case m68k.OperandSR:
		return "sr"
	case m68k.OperandUSP:
		return "usp"
	case m68k.OperandTrapVector:
		return fmt.Sprintf("#%d", op.TrapVector)
	default:
		return "?"
	}
}
