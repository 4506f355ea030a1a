package listing

import (
	"fmt"
	"strings"

	"github.com/dis68k/dis68k/decoder"
	"github.com/dis68k/dis68k/format"
	"github.com/dis68k/dis68k/m68k"
)

// disassembleCode walks data one instruction at a time. A decode error,
// or fewer than two bytes remaining, falls back to a single dc.w (or a
// trailing dc.b for one odd byte) and advances past it — the decoder
// itself never does this, so the recovery lives here.
func disassembleCode(data []byte, opts Options) []string {
	var lines []string
	fmtOpts := format.Options{Uppercase: opts.Uppercase}
	offset := 0

	for offset < len(data) {
		inst, n, err := decoder.Decode(data, uint32(offset), 0, opts.Cpu)
		if err == nil {
			hexText := hexDump(data[offset : offset+n])
			text := format.Format(inst, fmtOpts)
			lines = append(lines, codeLine(uint32(offset), hexText, text, opts))
			offset += n
			continue
		}

		if len(data)-offset >= 2 {
			w := uint32(data[offset])<<8 | uint32(data[offset+1])
			text := format.FormatDc(w, m68k.SizeWord)
			lines = append(lines, codeLine(uint32(offset), hexDump(data[offset:offset+2]), text, opts))
			offset += 2
		} else {
			b := uint32(data[offset])
			text := fmt.Sprintf("%-8s$%02x", "dc.b", b)
			lines = append(lines, codeLine(uint32(offset), hexDump(data[offset:offset+1]), text, opts))
			offset++
		}
	}
	return lines
}

func hexDump(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		fmt.Fprintf(&sb, "%02X", v)
	}
	return sb.String()
}

func codeLine(address uint32, hexText, instrText string, opts Options) string {
	var parts []string
	if opts.ShowAddresses {
		parts = append(parts, fmt.Sprintf("%08X", address))
	}
	if opts.ShowHex {
		parts = append(parts, fmt.Sprintf("%-20s", hexText))
	}
	parts = append(parts, instrText)
	return strings.Join(parts, "  ")
}
