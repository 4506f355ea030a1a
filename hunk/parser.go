package hunk

import (
	"bytes"
	"fmt"

	"github.com/dis68k/dis68k/cursor"
)

// maxHunkCount guards against a corrupt or hostile hunk_count header
// field driving an unbounded allocation; no real Amiga executable
// approaches this many hunks.
const maxHunkCount = 65536

type sizeTableEntry struct {
	memory MemoryType
	size   uint32 // bytes
}

// Parse reads a loadable Amiga Hunk executable from b and returns its
// structured representation. Parsing is fail-fast: the first error
// encountered aborts the whole parse.
func Parse(b []byte) (*File, error) {
	c := cursor.New(b)

	magic, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrTruncated, err)
	}
	switch magic {
	case idHeader:
		// proceed
	case idUnit:
		return nil, fmt.Errorf("%w: unit", ErrUnsupportedKind)
	default:
		return nil, fmt.Errorf("%w: got %#08x", ErrBadMagic, magic)
	}

	names, err := readResidentNames(c)
	if err != nil {
		return nil, err
	}

	hunkCount, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading hunk_count: %v", ErrTruncated, err)
	}
	if hunkCount > maxHunkCount {
		return nil, fmt.Errorf("%w: hunk_count %d exceeds sanity limit", ErrSizeTableMismatch, hunkCount)
	}
	firstHunk, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading first_hunk: %v", ErrTruncated, err)
	}
	lastHunk, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading last_hunk: %v", ErrTruncated, err)
	}
	if lastHunk-firstHunk+1 != hunkCount {
		return nil, fmt.Errorf("%w: first=%d last=%d count=%d", ErrSizeTableMismatch, firstHunk, lastHunk, hunkCount)
	}

	sizeTable := make([]sizeTableEntry, hunkCount)
	for i := range sizeTable {
		word, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("%w: reading size table entry %d: %v", ErrTruncated, i, err)
		}
		mem := memoryTypeFromFlags(word)
		sizeLongs := word & kindMask
		if mem == MemoryAdvisory {
			if _, err := c.ReadU32(); err != nil {
				return nil, fmt.Errorf("%w: reading extended size specifier %d: %v", ErrTruncated, i, err)
			}
		}
		sizeTable[i] = sizeTableEntry{memory: mem, size: sizeLongs * 4}
	}

	f := &File{FirstHunk: firstHunk, LastHunk: lastHunk, Names: names}

	i := 0
	for i < int(hunkCount) {
		rawKind, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("%w: reading hunk %d kind: %v", ErrTruncated, i, err)
		}
		kindID := rawKind & kindMask

		switch kindID {
		case idCode, idData:
			sizeLongs, err := c.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("%w: reading hunk %d size: %v", ErrTruncated, i, err)
			}
			data, err := c.ReadBytes(int(sizeLongs) * 4)
			if err != nil {
				return nil, fmt.Errorf("%w: reading hunk %d payload: %v", ErrTruncated, i, err)
			}
			k := KindCode
			if kindID == idData {
				k = KindData
			}
			f.Hunks = append(f.Hunks, Hunk{
				Index:     i,
				Kind:      k,
				Memory:    sizeTable[i].memory,
				AllocSize: sizeTable[i].size,
				Data:      data,
			})

		case idBss:
			readLongs, err := c.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("%w: reading hunk %d bss size: %v", ErrTruncated, i, err)
			}
			readSize := readLongs * 4
			alloc := sizeTable[i].size
			if readSize > alloc {
				alloc = readSize
			}
			f.Hunks = append(f.Hunks, Hunk{
				Index:     i,
				Kind:      KindBss,
				Memory:    sizeTable[i].memory,
				AllocSize: alloc,
			})

		case idReloc32:
			if err := readRelocGroups(c, f, false); err != nil {
				return nil, err
			}

		case idReloc32Short:
			if err := readRelocGroups(c, f, true); err != nil {
				return nil, err
			}

		case idSymbol:
			if err := readSymbols(c, f); err != nil {
				return nil, err
			}

		case idDebug:
			sizeLongs, err := c.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("%w: reading hunk %d debug size: %v", ErrTruncated, i, err)
			}
			data, err := c.ReadBytes(int(sizeLongs) * 4)
			if err != nil {
				return nil, fmt.Errorf("%w: reading hunk %d debug data: %v", ErrTruncated, i, err)
			}
			h, err := lastHunkOf(f)
			if err != nil {
				return nil, err
			}
			h.DebugData = data

		case idName:
			nm, err := readAmigaName(c)
			if err != nil {
				return nil, err
			}
			if len(f.Hunks) > 0 {
				f.Hunks[len(f.Hunks)-1].Name = nm
			}

		case idEnd:
			i++

		case idExt:
			if err := skipExtBlock(c); err != nil {
				return nil, err
			}

		case idUnit, idLib, idIndex:
			return nil, fmt.Errorf("%w: %#x inside hunk stream", ErrUnsupportedKind, kindID)

		case idOverlay, idBreak:
			// Overlay tables mark demand-loaded segments beyond the main
			// load file; this module only disassembles the primary
			// executable, so the hunk stream ends here.
			return f, nil

		default:
			if kindID > idAbsReloc16 {
				// Debug-like trailing kind: skip size longwords of payload.
				sizeLongs, err := c.ReadU32()
				if err != nil {
					return nil, fmt.Errorf("%w: reading hunk %d trailing block size: %v", ErrTruncated, i, err)
				}
				if _, err := c.ReadBytes(int(sizeLongs) * 4); err != nil {
					return nil, fmt.Errorf("%w: skipping hunk %d trailing block: %v", ErrTruncated, i, err)
				}
				continue
			}
			if isRelocLikeKind(kindID) {
				if err := skipRelocBlock(c); err != nil {
					return nil, err
				}
				continue
			}
			return nil, fmt.Errorf("%w: %#x", ErrUnknownHunkKind, rawKind)
		}
	}

	return f, nil
}

// isRelocLikeKind reports whether kindID is one of the supplemented
// relative-relocation variants, which this module parses generically
// (count/target/offsets, like HUNK_RELOC32) without retaining the data:
// resolving PC/data-relative relocations is outside the disassembler's
// scope, but skipping them correctly keeps the cursor aligned.
func isRelocLikeKind(kindID uint32) bool {
	switch kindID {
	case idRelReloc16, idRelReloc8, idDRel32, idDRel16, idDRel8, idRelReloc32, idAbsReloc16:
		return true
	default:
		return false
	}
}

func lastHunkOf(f *File) (*Hunk, error) {
	if len(f.Hunks) == 0 {
		return nil, fmt.Errorf("%w", ErrOrphanMetadata)
	}
	return &f.Hunks[len(f.Hunks)-1], nil
}

func readRelocGroups(c *cursor.Cursor, f *File, short bool) error {
	h, err := lastHunkOf(f)
	if err != nil {
		return err
	}
	for {
		var count uint32
		if short {
			v, err := c.ReadU16()
			if err != nil {
				return fmt.Errorf("%w: reading reloc count: %v", ErrTruncated, err)
			}
			count = uint32(v)
		} else {
			v, err := c.ReadU32()
			if err != nil {
				return fmt.Errorf("%w: reading reloc count: %v", ErrTruncated, err)
			}
			count = v
		}
		if count == 0 {
			break
		}
		var target uint32
		if short {
			v, err := c.ReadU16()
			if err != nil {
				return fmt.Errorf("%w: reading reloc target: %v", ErrTruncated, err)
			}
			target = uint32(v)
		} else {
			v, err := c.ReadU32()
			if err != nil {
				return fmt.Errorf("%w: reading reloc target: %v", ErrTruncated, err)
			}
			target = v
		}
		offsets := make([]uint32, count)
		for i := range offsets {
			if short {
				v, err := c.ReadU16()
				if err != nil {
					return fmt.Errorf("%w: reading reloc offset: %v", ErrTruncated, err)
				}
				offsets[i] = uint32(v)
			} else {
				v, err := c.ReadU32()
				if err != nil {
					return fmt.Errorf("%w: reading reloc offset: %v", ErrTruncated, err)
				}
				offsets[i] = v
			}
		}
		h.Relocations = append(h.Relocations, Relocation{TargetHunk: target, Offsets: offsets})
	}
	if short {
		return c.AlignToLongword()
	}
	return nil
}

// skipRelocBlock consumes a generic relative-relocation block (the
// supplemented RELRELOC/DREL/ABSRELOC16 kinds) using the same
// count/target/offsets shape as HUNK_RELOC32, discarding the content.
func skipRelocBlock(c *cursor.Cursor) error {
	for {
		count, err := c.ReadU32()
		if err != nil {
			return fmt.Errorf("%w: reading relocation block count: %v", ErrTruncated, err)
		}
		if count == 0 {
			return nil
		}
		if _, err := c.ReadU32(); err != nil { // target hunk
			return fmt.Errorf("%w: reading relocation block target: %v", ErrTruncated, err)
		}
		if err := c.Skip(int(count) * 4); err != nil {
			return fmt.Errorf("%w: skipping relocation offsets: %v", ErrTruncated, err)
		}
	}
}

func readSymbols(c *cursor.Cursor, f *File) error {
	h, err := lastHunkOf(f)
	if err != nil {
		return err
	}
	for {
		nameLongs, err := c.ReadU32()
		if err != nil {
			return fmt.Errorf("%w: reading symbol name length: %v", ErrTruncated, err)
		}
		if nameLongs == 0 {
			return nil
		}
		nameBytes, err := c.ReadBytes(int(nameLongs) * 4)
		if err != nil {
			return fmt.Errorf("%w: reading symbol name: %v", ErrTruncated, err)
		}
		value, err := c.ReadU32()
		if err != nil {
			return fmt.Errorf("%w: reading symbol value: %v", ErrTruncated, err)
		}
		h.Symbols = append(h.Symbols, Symbol{Name: trimTrailingZeros(nameBytes), Value: value})
	}
}

// readResidentNames reads the repeated {length_longs; bytes} sequence of
// resident-library names that follows the header magic, terminated by a
// zero-length entry.
func readResidentNames(c *cursor.Cursor) ([]string, error) {
	var names []string
	for {
		lengthLongs, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("%w: reading resident name length: %v", ErrTruncated, err)
		}
		if lengthLongs == 0 {
			return names, nil
		}
		raw, err := c.ReadBytes(int(lengthLongs) * 4)
		if err != nil {
			return nil, fmt.Errorf("%w: reading resident name: %v", ErrTruncated, err)
		}
		names = append(names, trimTrailingZeros(raw))
	}
}

// readAmigaName reads a single {length_longs; bytes} name, as used by
// HUNK_NAME (which, unlike the resident-name list, is a single entry, not
// a zero-terminated sequence).
func readAmigaName(c *cursor.Cursor) (string, error) {
	lengthLongs, err := c.ReadU32()
	if err != nil {
		return "", fmt.Errorf("%w: reading HUNK_NAME length: %v", ErrTruncated, err)
	}
	raw, err := c.ReadBytes(int(lengthLongs) * 4)
	if err != nil {
		return "", fmt.Errorf("%w: reading HUNK_NAME bytes: %v", ErrTruncated, err)
	}
	return trimTrailingZeros(raw), nil
}

func trimTrailingZeros(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

// skipExtBlock consumes one HUNK_EXT block: entries until a zero
// name-length word. Each entry's header longword packs an 8-bit sub-type
// in its upper byte and a name length (in longwords) in the low 24 bits.
// Sub-types <128 are name+value definitions; >=128 are name + count +
// that many 4-byte offsets; the common-symbol sub-types (130, 137) carry
// an extra size longword before the offset list. Nothing is recorded:
// external-reference resolution is out of scope.
func skipExtBlock(c *cursor.Cursor) error {
	for {
		header, err := c.ReadU32()
		if err != nil {
			return fmt.Errorf("%w: reading HUNK_EXT entry header: %v", ErrTruncated, err)
		}
		nameLongs := header & 0x00FFFFFF
		if nameLongs == 0 {
			return nil
		}
		subType := (header >> 24) & 0xFF
		if err := c.Skip(int(nameLongs) * 4); err != nil {
			return fmt.Errorf("%w: skipping HUNK_EXT entry name: %v", ErrTruncated, err)
		}
		if subType < 128 {
			if err := c.Skip(4); err != nil {
				return fmt.Errorf("%w: skipping HUNK_EXT definition value: %v", ErrTruncated, err)
			}
			continue
		}
		if subType == 130 || subType == 137 {
			if err := c.Skip(4); err != nil {
				return fmt.Errorf("%w: skipping HUNK_EXT common size: %v", ErrTruncated, err)
			}
		}
		refCount, err := c.ReadU32()
		if err != nil {
			return fmt.Errorf("%w: reading HUNK_EXT reference count: %v", ErrTruncated, err)
		}
		if err := c.Skip(int(refCount) * 4); err != nil {
			return fmt.Errorf("%w: skipping HUNK_EXT references: %v", ErrTruncated, err)
		}
	}
}
