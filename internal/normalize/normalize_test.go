package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/parsed"
	"github.com/inkgrid/pbn/internal/store"
)

func solidGoal(rows, cols int, fill byte) parsed.Solution {
	cells := make([]parsed.CellSpec, rows*cols)
	for i := range cells {
		cells[i] = parsed.CellSpec{Glyphs: []byte{fill}}
	}
	return parsed.Solution{
		Kind:     parsed.Goal,
		HasImage: true,
		Image:    parsed.ImageSpec{Rows: rows, Cols: cols, Cells: cells, Valid: true},
	}
}

func TestNormalizeAddsMissingBlackAndWhite(t *testing.T) {
	pz := &parsed.Puzzle{
		Solutions: []parsed.Solution{solidGoal(1, 1, '.')},
	}
	st := store.New()
	diags := &diagnostics.List{}
	rec, ok := NormalizePuzzle(st, diags, diagnostics.Location{}, pz)
	require.True(t, ok)
	require.False(t, diags.Any())
	require.EqualValues(t, 2, rec.ColorsLen)
	require.Equal(t, "white", st.ResolveString(st.Colors[rec.ColorsStart].Name))
	require.Equal(t, "black", st.ResolveString(st.Colors[rec.ColorsStart+1].Name))
}

func TestNormalizeUndefinedBackgroundDropsPuzzle(t *testing.T) {
	pz := &parsed.Puzzle{
		BackgroundColorName: "chartreuse",
		Solutions:           []parsed.Solution{solidGoal(1, 1, '.')},
	}
	st := store.New()
	diags := &diagnostics.List{}
	_, ok := NormalizePuzzle(st, diags, diagnostics.Location{}, pz)
	require.False(t, ok)
	require.Equal(t, 1, diags.Len())
	require.Equal(t, diagnostics.PuzzleColorUndefined, diags.All()[0].Kind)
}

func TestNormalizeTooManyColorsDropsPuzzle(t *testing.T) {
	pz := &parsed.Puzzle{Solutions: []parsed.Solution{solidGoal(1, 1, 'X')}}
	for i := 0; i < 33; i++ {
		pz.Colors = append(pz.Colors, parsed.Color{
			Name: string(rune('a' + i)), HasName: true,
			Char: byte('a' + i), HasChar: true,
		})
	}
	st := store.New()
	diags := &diagnostics.List{}
	_, ok := NormalizePuzzle(st, diags, diagnostics.Location{}, pz)
	require.False(t, ok)
	require.Equal(t, diagnostics.PuzzleTooManyColors, diags.All()[0].Kind)
}

func TestNormalizeDerivesCluesFromGoalImage(t *testing.T) {
	// 1x3 goal: black, white, black -> row clue [1,1] with a background gap.
	cells := []parsed.CellSpec{{Glyphs: []byte{'X'}}, {Glyphs: []byte{'.'}}, {Glyphs: []byte{'X'}}}
	pz := &parsed.Puzzle{
		Solutions: []parsed.Solution{{
			Kind: parsed.Goal, HasImage: true,
			Image: parsed.ImageSpec{Rows: 1, Cols: 3, Cells: cells, Valid: true},
		}},
	}
	st := store.New()
	diags := &diagnostics.List{}
	rec, ok := NormalizePuzzle(st, diags, diagnostics.Location{}, pz)
	require.True(t, ok)
	require.EqualValues(t, 1, rec.Rows)
	require.EqualValues(t, 3, rec.Columns)
	require.EqualValues(t, 3, rec.ColCluesLen)

	rowLine := st.ClueLines[rec.RowCluesStart]
	require.Equal(t, 2, st.SliceLen(rowLine.Clues))
	c0 := store.DecodeClue(st.SliceWord(rowLine.Clues, 0))
	c1 := store.DecodeClue(st.SliceWord(rowLine.Clues, 1))
	require.EqualValues(t, 1, c0.Count)
	require.EqualValues(t, 1, c1.Count)
	require.Equal(t, c0.Color, c1.Color) // both black (index 1, the default)
}

func TestNormalizeMissingGoalWithNoClues(t *testing.T) {
	pz := &parsed.Puzzle{}
	st := store.New()
	diags := &diagnostics.List{}
	_, ok := NormalizePuzzle(st, diags, diagnostics.Location{}, pz)
	require.False(t, ok)
	require.Equal(t, diagnostics.PuzzleMissingGoal, diags.All()[0].Kind)
}

func TestNormalizeImageMismatchedDimensionsDropsOnlyThatSolution(t *testing.T) {
	goal := solidGoal(1, 2, 'X')
	bad := parsed.Solution{
		Kind: parsed.Solved, HasImage: true,
		Image: parsed.ImageSpec{Rows: 2, Cols: 2, Cells: make([]parsed.CellSpec, 4), Valid: true},
	}
	for i := range bad.Image.Cells {
		bad.Image.Cells[i] = parsed.CellSpec{Glyphs: []byte{'X'}}
	}
	pz := &parsed.Puzzle{Solutions: []parsed.Solution{goal, bad}}
	st := store.New()
	diags := &diagnostics.List{}
	rec, ok := NormalizePuzzle(st, diags, diagnostics.Location{}, pz)
	require.True(t, ok)
	require.EqualValues(t, 0, rec.SolvedLen)
	require.Contains(t, kindsOf(diags), diagnostics.ImageMismatchedDimensions)
}

func kindsOf(l *diagnostics.List) []diagnostics.Kind {
	var out []diagnostics.Kind
	for _, d := range l.All() {
		out = append(out, d.Kind)
	}
	return out
}
