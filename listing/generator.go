package listing

import (
	"fmt"
	"strconv"

	"github.com/dis68k/dis68k/hunk"
)

// Generate renders a complete disassembly listing for file.
func Generate(file *hunk.File, opts Options) []Line {
	var lines []Line
	var lineNum uint32 = 1

	push := func(text string) {
		lines = append(lines, Line{Number: lineNum, Text: text})
		lineNum++
	}

	push("; Amiga Hunk Executable Disassembly")
	push(fmt.Sprintf("; Hunks: %d", len(file.Hunks)))
	push("")

	for i := range file.Hunks {
		h := &file.Hunks[i]
		push("")
		push(fmt.Sprintf("; ──── SECTION hunk_%d, %s (hunk %d, %d bytes, mem=%s) ────",
			h.Index, sectionKind(h.Kind), h.Index, h.AllocSize, h.Memory))
		if h.Name != "" {
			push(fmt.Sprintf("; Name: %s", h.Name))
		}
		if len(h.Symbols) > 0 {
			push("; Symbols:")
			for _, sym := range h.Symbols {
				push(fmt.Sprintf(";   $%08X  %s", sym.Value, sym.Name))
			}
		}
		push("")

		switch h.Kind {
		case hunk.KindCode:
			for _, text := range disassembleCode(h.Data, opts) {
				push(text)
			}
		case hunk.KindData:
			for _, text := range formatDataSection(h.Data, relocationMap(h), opts) {
				push(text)
			}
		case hunk.KindBss:
			push(formatBssLine(h.AllocSize, opts))
		}
	}

	if opts.ShowLineNumbers {
		padLineNumbers(lines)
	}
	return lines
}

func padLineNumbers(lines []Line) {
	width := len(strconv.Itoa(len(lines)))
	for i := range lines {
		lines[i].Text = fmt.Sprintf("%*d  %s", width, lines[i].Number, lines[i].Text)
	}
}

func sectionKind(k hunk.Kind) string {
	switch k {
	case hunk.KindCode:
		return "CODE"
	case hunk.KindData:
		return "DATA"
	case hunk.KindBss:
		return "BSS"
	default:
		return "UNKNOWN"
	}
}

// relocationMap flattens a hunk's relocation groups into a byte-offset →
// target-hunk lookup, used to annotate data-section dc.l lines.
func relocationMap(h *hunk.Hunk) map[uint32]uint32 {
	m := make(map[uint32]uint32)
	for _, reloc := range h.Relocations {
		for _, off := range reloc.Offsets {
			m[off] = reloc.TargetHunk
		}
	}
	return m
}
