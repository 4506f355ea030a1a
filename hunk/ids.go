package hunk

// Raw hunk type ID constants, as they appear (after masking the memory
// flag bits) in a hunk-kind word.
const (
	idUnit         uint32 = 0x3E7
	idName         uint32 = 0x3E8
	idCode         uint32 = 0x3E9
	idData         uint32 = 0x3EA
	idBss          uint32 = 0x3EB
	idReloc32      uint32 = 0x3EC
	idRelReloc16   uint32 = 0x3ED
	idRelReloc8    uint32 = 0x3EE
	idExt          uint32 = 0x3EF
	idSymbol       uint32 = 0x3F0
	idDebug        uint32 = 0x3F1
	idEnd          uint32 = 0x3F2
	idHeader       uint32 = 0x3F3
	idOverlay      uint32 = 0x3F5
	idBreak        uint32 = 0x3F6
	idDRel32       uint32 = 0x3F7
	idDRel16       uint32 = 0x3F8
	idDRel8        uint32 = 0x3F9
	idLib          uint32 = 0x3FA
	idIndex        uint32 = 0x3FB
	idReloc32Short uint32 = 0x3FC
	idRelReloc32   uint32 = 0x3FD
	idAbsReloc16   uint32 = 0x3FE

	// kindMask strips the memory-type flag bits from a hunk-kind word.
	kindMask uint32 = 0x3FFFFFFF
)
