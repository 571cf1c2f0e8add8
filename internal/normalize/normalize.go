package normalize

import (
	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/parsed"
	"github.com/inkgrid/pbn/internal/store"
)

const glyphAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

type paletteEntry struct {
	name    string
	hasName bool
	char    byte
	hasChar bool
	r, g, b byte
}

// NormalizePuzzle runs the full nine-step pipeline over pz and, on
// success, returns a store.PuzzleRecord ready to append.
func NormalizePuzzle(st *store.Store, diags *diagnostics.List, loc diagnostics.Location, pz *parsed.Puzzle) (store.PuzzleRecord, bool) {
	defaultName := pz.DefaultColorName
	if defaultName == "" {
		defaultName = "black"
	}
	backgroundName := pz.BackgroundColorName
	if backgroundName == "" {
		backgroundName = "white"
	}

	palette := make([]paletteEntry, len(pz.Colors))
	for i, c := range pz.Colors {
		palette[i] = paletteEntry{name: c.Name, hasName: c.HasName, char: c.Char, hasChar: c.HasChar, r: c.R, g: c.G, b: c.B}
	}

	palette = completePalette(palette)
	assignGlyphs(palette)

	bgIdx, defIdx := -1, -1
	for i, e := range palette {
		if e.hasName && e.name == backgroundName && bgIdx == -1 {
			bgIdx = i
		}
	}
	for i, e := range palette {
		if e.hasName && e.name == defaultName && defIdx == -1 {
			defIdx = i
		}
	}
	if bgIdx == -1 || defIdx == -1 {
		diags.Add(diagnostics.PuzzleColorUndefined, loc)
		return store.PuzzleRecord{}, false
	}
	if bgIdx != 0 {
		palette[0], palette[bgIdx] = palette[bgIdx], palette[0]
		switch defIdx {
		case bgIdx:
			defIdx = 0
		case 0:
			defIdx = bgIdx
		}
	}
	if defIdx != 1 {
		palette[1], palette[defIdx] = palette[defIdx], palette[1]
	}

	if len(palette) > 32 {
		diags.Add(diagnostics.PuzzleTooManyColors, loc)
		return store.PuzzleRecord{}, false
	}

	nameIndex, glyphIndex := buildTables(diags, loc, palette)

	var rowLines, colLines []store.ClueLineRecord
	if pz.RowClues.Present {
		var ok bool
		rowLines, ok = resolveClueBlock(st, diags, loc, pz.RowClues, nameIndex, defaultName)
		if !ok {
			return store.PuzzleRecord{}, false
		}
	}
	if pz.ColumnClues.Present {
		var ok bool
		colLines, ok = resolveClueBlock(st, diags, loc, pz.ColumnClues, nameIndex, defaultName)
		if !ok {
			return store.PuzzleRecord{}, false
		}
	}

	rows, cols, ok := determineDimensions(diags, loc, pz, rowLines, colLines)
	if !ok {
		return store.PuzzleRecord{}, false
	}

	built := encodeSolutions(diags, loc, st, pz, len(palette), glyphIndex, rows, cols)

	if !pz.RowClues.Present || !pz.ColumnClues.Present {
		goalRec, ok := firstBuiltGoal(built)
		if !ok {
			diags.Add(diagnostics.PuzzleMissingGoal, loc)
			return store.PuzzleRecord{}, false
		}
		cells := st.SliceWords(goalRec.Image)
		if !pz.RowClues.Present {
			rowLines = deriveClueLines(st, cells, rows, cols, true)
		}
		if !pz.ColumnClues.Present {
			colLines = deriveClueLines(st, cells, rows, cols, false)
		}
	}

	return commit(st, pz, palette, rows, cols, rowLines, colLines, built), true
}

// completePalette adds the mandatory black and white entries when the
// document's palette doesn't already name them.
func completePalette(palette []paletteEntry) []paletteEntry {
	hasBlack, hasWhite := false, false
	for _, e := range palette {
		if e.hasName && e.name == "black" {
			hasBlack = true
		}
		if e.hasName && e.name == "white" {
			hasWhite = true
		}
	}
	if !hasBlack {
		palette = append(palette, paletteEntry{name: "black", hasName: true, char: 'X', hasChar: true})
	}
	if !hasWhite {
		palette = append(palette, paletteEntry{name: "white", hasName: true, char: '.', hasChar: true, r: 0xFF, g: 0xFF, b: 0xFF})
	}
	return palette
}

// assignGlyphs fills in char for every entry that didn't specify one,
// walking glyphAlphabet in order and skipping glyphs already taken.
func assignGlyphs(palette []paletteEntry) {
	used := make(map[byte]bool, len(palette))
	for _, e := range palette {
		if e.hasChar {
			used[e.char] = true
		}
	}
	next := 0
	for i := range palette {
		if palette[i].hasChar {
			continue
		}
		for next < len(glyphAlphabet) && used[glyphAlphabet[next]] {
			next++
		}
		if next >= len(glyphAlphabet) {
			continue
		}
		palette[i].char = glyphAlphabet[next]
		palette[i].hasChar = true
		used[palette[i].char] = true
		next++
	}
}

// buildTables constructs the name and glyph lookup tables, recording
// color_duplicate_name / color_duplicate_char for later entries of an
// already-seen name or glyph (the earlier entry's index wins).
func buildTables(diags *diagnostics.List, loc diagnostics.Location, palette []paletteEntry) (map[string]int, map[byte]int) {
	nameIndex := make(map[string]int, len(palette))
	glyphIndex := make(map[byte]int, len(palette))
	for i, e := range palette {
		if e.hasName {
			if _, dup := nameIndex[e.name]; dup {
				diags.Add(diagnostics.ColorDuplicateName, loc)
			} else {
				nameIndex[e.name] = i
			}
		}
		if e.hasChar {
			if _, dup := glyphIndex[e.char]; dup {
				diags.Add(diagnostics.ColorDuplicateChar, loc)
			} else {
				glyphIndex[e.char] = i
			}
		}
	}
	return nameIndex, glyphIndex
}

// determineDimensions settles rows and columns independently per axis:
// from the resolved clue lines when that axis's clues were present, or
// from the first valid goal image otherwise.
func determineDimensions(diags *diagnostics.List, loc diagnostics.Location, pz *parsed.Puzzle, rowLines, colLines []store.ClueLineRecord) (rows, cols int, ok bool) {
	var goalRows, goalCols int
	haveGoal := false
	ensureGoal := func() bool {
		if haveGoal {
			return true
		}
		idx := firstGoalIndex(pz.Solutions)
		if idx == -1 {
			return false
		}
		goalRows = pz.Solutions[idx].Image.Rows
		goalCols = pz.Solutions[idx].Image.Cols
		haveGoal = true
		return true
	}

	if pz.RowClues.Present {
		rows = len(rowLines)
	} else if ensureGoal() {
		rows = goalRows
	} else {
		diags.Add(diagnostics.PuzzleMissingGoal, loc)
		return 0, 0, false
	}

	if pz.ColumnClues.Present {
		cols = len(colLines)
	} else if ensureGoal() {
		cols = goalCols
	} else {
		diags.Add(diagnostics.PuzzleMissingGoal, loc)
		return 0, 0, false
	}
	return rows, cols, true
}

type builtSolution struct {
	kind parsed.SolutionKind
	rec  store.SolutionRecord
}

// encodeSolutions builds a store.SolutionRecord for every solution whose
// image is present, structurally valid, and matches the puzzle's
// dimensions. Dimension mismatches and unresolvable cell glyphs drop only
// that one solution.
func encodeSolutions(diags *diagnostics.List, loc diagnostics.Location, st *store.Store, pz *parsed.Puzzle, nColors int, glyphIndex map[byte]int, rows, cols int) []builtSolution {
	var built []builtSolution
	for _, sol := range pz.Solutions {
		if !sol.HasImage || !sol.Image.Valid {
			continue
		}
		if sol.Image.Rows != rows || sol.Image.Cols != cols {
			diags.Add(diagnostics.ImageMismatchedDimensions, loc)
			continue
		}
		cells := make([]uint32, len(sol.Image.Cells))
		ok := true
		for i, cs := range sol.Image.Cells {
			mask, cok := encodeCell(cs, nColors, glyphIndex)
			if !cok {
				diags.Add(diagnostics.PuzzleColorUndefined, loc)
				ok = false
				break
			}
			cells[i] = mask
		}
		if !ok {
			continue
		}
		var noteWords []uint32
		for _, n := range sol.Notes {
			noteWords = append(noteWords, uint32(st.InternText(n)))
		}
		built = append(built, builtSolution{
			kind: sol.Kind,
			rec: store.SolutionRecord{
				ID:    st.InternText(sol.ID),
				Image: st.PushWords(cells),
				Notes: st.PushWords(noteWords),
			},
		})
	}
	return built
}

func firstBuiltGoal(built []builtSolution) (store.SolutionRecord, bool) {
	for _, b := range built {
		if b.kind == parsed.Goal {
			return b.rec, true
		}
	}
	return store.SolutionRecord{}, false
}

func commit(st *store.Store, pz *parsed.Puzzle, palette []paletteEntry, rows, cols int, rowLines, colLines []store.ClueLineRecord, built []builtSolution) store.PuzzleRecord {
	colorRecords := make([]store.ColorRecord, len(palette))
	for i, e := range palette {
		colorRecords[i] = store.ColorRecord{Name: st.InternText(e.name), Char: e.char, R: e.r, G: e.g, B: e.b}
	}
	colorsStart, colorsLen := st.AppendColors(colorRecords)
	rowStart, rowLen := st.AppendClueLines(rowLines)
	colStart, colLen := st.AppendClueLines(colLines)

	var goals, solved, saved []store.SolutionRecord
	for _, b := range built {
		switch b.kind {
		case parsed.Goal:
			goals = append(goals, b.rec)
		case parsed.Solved:
			solved = append(solved, b.rec)
		case parsed.Saved:
			saved = append(saved, b.rec)
		}
	}
	goalsStart, goalsLen := st.AppendSolutions(goals)
	solvedStart, solvedLen := st.AppendSolutions(solved)
	savedStart, savedLen := st.AppendSolutions(saved)

	var noteWords []uint32
	for _, n := range pz.Notes {
		noteWords = append(noteWords, uint32(st.InternText(n)))
	}

	return store.PuzzleRecord{
		Source:      st.InternText(pz.Source),
		ID:          st.InternText(pz.ID),
		Title:       st.InternText(pz.Title),
		Author:      st.InternText(pz.Author),
		AuthorID:    st.InternText(pz.AuthorID),
		Copyright:   st.InternText(pz.Copyright),
		Description: st.InternText(pz.Description),

		Rows:    int32(rows),
		Columns: int32(cols),

		ColorsStart: colorsStart, ColorsLen: colorsLen,
		RowCluesStart: rowStart, RowCluesLen: rowLen,
		ColCluesStart: colStart, ColCluesLen: colLen,
		GoalsStart: goalsStart, GoalsLen: goalsLen,
		SolvedStart: solvedStart, SolvedLen: solvedLen,
		SavedStart: savedStart, SavedLen: savedLen,

		Notes: st.PushWords(noteWords),
	}
}
