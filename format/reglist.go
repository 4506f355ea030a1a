package format

import (
	"fmt"
	"strings"
)

// regList renders a canonical MOVEM mask (bit0=D0..bit7=D7,
// bit8=A0..bit15=A7) as contiguous ranges, e.g. "d0-d3/a0/a4-a6".
func regList(mask uint16) string {
	var dRegs, aRegs []int
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) != 0 {
			dRegs = append(dRegs, i)
		}
		if mask&(1<<uint(i+8)) != 0 {
			aRegs = append(aRegs, i)
		}
	}
	var parts []string
	parts = append(parts, regRanges("d", dRegs)...)
	parts = append(parts, addrRegRanges(aRegs)...)
	return strings.Join(parts, "/")
}

func regRanges(prefix string, regs []int) []string {
	if len(regs) == 0 {
		return nil
	}
	var parts []string
	start, end := regs[0], regs[0]
	flush := func() {
		if start == end {
			parts = append(parts, fmt.Sprintf("%s%d", prefix, start))
		} else {
			parts = append(parts, fmt.Sprintf("%s%d-%s%d", prefix, start, prefix, end))
		}
	}
	for i := 1; i < len(regs); i++ {
		if regs[i] == end+1 {
			end = regs[i]
			continue
		}
		flush()
		start, end = regs[i], regs[i]
	}
	flush()
	return parts
}

// addrRegRanges mirrors regRanges for the address-register half, but
// renders a7 as sp (a lone a7 becomes "sp"; a range ending at a7 keeps
// the numeric form, since "a4-sp" has no established reading).
func addrRegRanges(regs []int) []string {
	if len(regs) == 0 {
		return nil
	}
	parts := regRanges("a", regs)
	if len(parts) > 0 && parts[len(parts)-1] == "a7" {
		parts[len(parts)-1] = "sp"
	}
	return parts
}
