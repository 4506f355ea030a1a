package listing

import (
	"fmt"

	"github.com/dis68k/dis68k/hunk"
)

// HunkInfo summarizes one hunk without invoking the instruction decoder:
// kind, memory placement, allocation and payload size, the set of
// relocation target hunks, and symbol count.
type HunkInfo struct {
	Index           int
	Kind            string
	Memory          string
	AllocSize       uint32
	PayloadSize     int
	RelocationTargets []uint32
	SymbolCount     int
}

// GenerateHunkInfo is the --hunk-info traversal: one summary block per
// hunk, in file order.
func GenerateHunkInfo(file *hunk.File) []HunkInfo {
	infos := make([]HunkInfo, 0, len(file.Hunks))
	for i := range file.Hunks {
		h := &file.Hunks[i]
		seen := make(map[uint32]bool)
		var targets []uint32
		for _, reloc := range h.Relocations {
			if !seen[reloc.TargetHunk] {
				seen[reloc.TargetHunk] = true
				targets = append(targets, reloc.TargetHunk)
			}
		}
		infos = append(infos, HunkInfo{
			Index:             h.Index,
			Kind:              sectionKind(h.Kind),
			Memory:            h.Memory.String(),
			AllocSize:         h.AllocSize,
			PayloadSize:       len(h.Data),
			RelocationTargets: targets,
			SymbolCount:       len(h.Symbols),
		})
	}
	return infos
}

// String renders a HunkInfo as the summary block text used by the
// --hunk-info CLI mode.
func (hi HunkInfo) String() string {
	return fmt.Sprintf(
		"hunk %d: kind=%s mem=%s alloc=%d payload=%d relocs=%v symbols=%d",
		hi.Index, hi.Kind, hi.Memory, hi.AllocSize, hi.PayloadSize, hi.RelocationTargets, hi.SymbolCount,
	)
}
