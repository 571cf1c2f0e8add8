package normalize

import (
	"math/bits"

	"github.com/inkgrid/pbn/internal/store"
)

// deriveLineClues walks a single row or column of cells and produces its
// clue run-length encoding: consecutive cells whose bitset has exactly
// one candidate color, and that color is not index 0 (the background),
// form one clue. Any other cell — background, ambiguous, or fully wild —
// ends whatever run is in progress without contributing a clue itself.
func deriveLineClues(cells []uint32) []store.Clue {
	var out []store.Clue
	curColor := -1
	curLen := 0
	flush := func() {
		if curColor >= 1 && curLen > 0 {
			out = append(out, store.Clue{Color: uint8(curColor), Count: uint32(curLen)})
		}
		curColor = -1
		curLen = 0
	}
	for _, c := range cells {
		if bits.OnesCount32(c) == 1 {
			color := bits.TrailingZeros32(c)
			if color == curColor {
				curLen++
				continue
			}
			flush()
			curColor = color
			curLen = 1
			continue
		}
		flush()
	}
	flush()
	return out
}

func encodeClueWords(clues []store.Clue) []uint32 {
	words := make([]uint32, len(clues))
	for i, c := range clues {
		words[i] = store.EncodeClue(c)
	}
	return words
}

// deriveClueLines produces one store.ClueLineRecord per row (rowMajor) or
// per column, from a row-major cells slice of size rows*cols.
func deriveClueLines(st *store.Store, cells []uint32, rows, cols int, rowMajor bool) []store.ClueLineRecord {
	var lines []store.ClueLineRecord
	if rowMajor {
		for r := 0; r < rows; r++ {
			line := deriveLineClues(cells[r*cols : r*cols+cols])
			lines = append(lines, store.ClueLineRecord{Clues: st.PushWords(encodeClueWords(line))})
		}
		return lines
	}
	for c := 0; c < cols; c++ {
		col := make([]uint32, rows)
		for r := 0; r < rows; r++ {
			col[r] = cells[r*cols+c]
		}
		line := deriveLineClues(col)
		lines = append(lines, store.ClueLineRecord{Clues: st.PushWords(encodeClueWords(line))})
	}
	return lines
}
