package normalize

import "github.com/inkgrid/pbn/internal/parsed"

// fullMask is the all-candidates bitset for a palette of n colors — the
// value both the saved-solution wildcard '?' and Image.Clear produce.
func fullMask(n int) uint32 {
	switch {
	case n <= 0:
		return 0
	case n >= 32:
		return 0xFFFFFFFF
	default:
		return uint32(1)<<uint(n) - 1
	}
}

// encodeCell turns a scanned cell spec into its candidate-color bitset.
// ok is false when a bracket group or single glyph references a
// character with no palette entry.
func encodeCell(cs parsed.CellSpec, nColors int, glyphIndex map[byte]int) (uint32, bool) {
	if cs.Wild {
		return fullMask(nColors), true
	}
	var mask uint32
	for _, g := range cs.Glyphs {
		idx, ok := glyphIndex[g]
		if !ok {
			return 0, false
		}
		mask |= 1 << uint(idx)
	}
	return mask, true
}
