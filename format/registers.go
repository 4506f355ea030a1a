package format

import (
	"fmt"

	"github.com/dis68k/dis68k/m68k"
)

// dataReg renders a data register name, d0..d7.
func dataReg(n uint16) string {
	return fmt.Sprintf("d%d", n)
}

// addrReg renders an address register name. A7 is always rendered sp,
// in every syntactic position (bare, indirect, postinc, predec,
// displacement).
func addrReg(n uint16) string {
	if n == 7 {
		return "sp"
	}
	return fmt.Sprintf("a%d", n)
}

func indexRegName(kind m68k.IndexRegKind, n uint16) string {
	if kind == m68k.IndexAddr {
		return addrReg(n)
	}
	return dataReg(n)
}
