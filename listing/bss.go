package listing

import (
	"fmt"
	"strings"
)

func formatBssLine(size uint32, opts Options) string {
	var parts []string
	if opts.ShowAddresses {
		parts = append(parts, "00000000")
	}
	if opts.ShowHex {
		parts = append(parts, fmt.Sprintf("%-20s", ""))
	}
	parts = append(parts, fmt.Sprintf("ds.b     %d", size))
	return strings.Join(parts, "  ")
}
