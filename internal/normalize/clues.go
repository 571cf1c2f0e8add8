package normalize

import (
	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/parsed"
	"github.com/inkgrid/pbn/internal/store"
)

// resolveClueBlock turns a parsed.ClueBlock's color-name references into
// palette indices, given the puzzle's finished name table and default
// color. ok is false when an entry names a color that isn't in the
// palette, which drops the whole puzzle — a clue that can't be resolved
// leaves the document's meaning undefined.
func resolveClueBlock(st *store.Store, diags *diagnostics.List, loc diagnostics.Location, block parsed.ClueBlock, nameIndex map[string]int, defaultName string) ([]store.ClueLineRecord, bool) {
	lines := make([]store.ClueLineRecord, 0, len(block.Lines))
	for _, line := range block.Lines {
		words := make([]uint32, 0, len(line.Entries))
		for _, ent := range line.Entries {
			name := ent.ColorName
			if !ent.HasColor {
				name = defaultName
			}
			idx, ok := nameIndex[name]
			if !ok {
				diags.Add(diagnostics.PuzzleColorUndefined, loc)
				return nil, false
			}
			count := ent.Count
			if !ent.Valid {
				count = 0
			}
			words = append(words, store.EncodeClue(store.Clue{Color: uint8(idx), Count: count}))
		}
		lines = append(lines, store.ClueLineRecord{Clues: st.PushWords(words)})
	}
	return lines, true
}

// firstGoalIndex returns the index of the first solution that is a goal
// with a structurally valid image, or -1 if there is none.
func firstGoalIndex(sols []parsed.Solution) int {
	for i, s := range sols {
		if s.Kind == parsed.Goal && s.HasImage && s.Image.Valid {
			return i
		}
	}
	return -1
}
