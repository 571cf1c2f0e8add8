package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkgrid/pbn/internal/store"
)

// buildSimplePuzzle assembles a one-puzzle store by hand: a 1x2 goal of
// [black, white], matching row/column clues, and a document title.
func buildSimplePuzzle(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	root := store.PuzzleRecord{Title: st.InternText("Demo")}
	st.AppendPuzzle(root)

	colorsStart, colorsLen := st.AppendColors([]store.ColorRecord{
		{Name: st.InternText("white"), Char: '.', R: 0xFF, G: 0xFF, B: 0xFF},
		{Name: st.InternText("black"), Char: 'X'},
	})

	rowClue := st.PushWords([]uint32{store.EncodeClue(store.Clue{Color: 1, Count: 1})})
	rowStart, rowLen := st.AppendClueLines([]store.ClueLineRecord{{Clues: rowClue}})

	colClueA := st.PushWords([]uint32{store.EncodeClue(store.Clue{Color: 1, Count: 1})})
	colClueB := st.PushWords(nil)
	colStart, colLen := st.AppendClueLines([]store.ClueLineRecord{{Clues: colClueA}, {Clues: colClueB}})

	image := st.PushWords([]uint32{0b10, 0b01})
	goalsStart, goalsLen := st.AppendSolutions([]store.SolutionRecord{{Image: image}})

	st.AppendPuzzle(store.PuzzleRecord{
		ID:            st.InternText("p1"),
		Rows:          1,
		Columns:       2,
		ColorsStart:   colorsStart,
		ColorsLen:     colorsLen,
		RowCluesStart: rowStart, RowCluesLen: rowLen,
		ColCluesStart: colStart, ColCluesLen: colLen,
		GoalsStart: goalsStart, GoalsLen: goalsLen,
	})
	return st
}

func TestRenderProducesWellFormedStructure(t *testing.T) {
	st := buildSimplePuzzle(t)
	var buf bytes.Buffer
	require.NoError(t, Render(st, &buf))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n<puzzleset>\n"))
	require.Contains(t, out, "<title>Demo</title>")
	require.Contains(t, out, `<puzzle type="grid">`)
	require.NotContains(t, out, "defaultcolor")
	require.NotContains(t, out, "backgroundcolor")
	require.Contains(t, out, `<color name="white" char=".">FFFFFF</color>`)
	require.Contains(t, out, `<color name="black" char="X">000000</color>`)
	require.Contains(t, out, "<image>\n|X.|\n</image>")
	require.Contains(t, out, "<count>1</count>")
	require.NotContains(t, out, `type="goal"`)
	require.True(t, strings.HasSuffix(out, "</puzzleset>\n"))
}

func TestRenderEmitsExplicitColorOnNonDefaultCount(t *testing.T) {
	st := store.New()
	st.AppendPuzzle(store.PuzzleRecord{})

	colorsStart, colorsLen := st.AppendColors([]store.ColorRecord{
		{Name: st.InternText("white"), Char: '.'},
		{Name: st.InternText("black"), Char: 'X'},
		{Name: st.InternText("red"), Char: 'R'},
	})
	rowClue := st.PushWords([]uint32{store.EncodeClue(store.Clue{Color: 2, Count: 3})})
	rowStart, rowLen := st.AppendClueLines([]store.ClueLineRecord{{Clues: rowClue}})
	colClue := st.PushWords(nil)
	colStart, colLen := st.AppendClueLines([]store.ClueLineRecord{{Clues: colClue}, {Clues: colClue}, {Clues: colClue}})
	image := st.PushWords([]uint32{0b100, 0b100, 0b100})
	solvedStart, solvedLen := st.AppendSolutions([]store.SolutionRecord{{Image: image}})

	st.AppendPuzzle(store.PuzzleRecord{
		Rows: 1, Columns: 3,
		ColorsStart: colorsStart, ColorsLen: colorsLen,
		RowCluesStart: rowStart, RowCluesLen: rowLen,
		ColCluesStart: colStart, ColCluesLen: colLen,
		SolvedStart: solvedStart, SolvedLen: solvedLen,
	})

	var buf bytes.Buffer
	require.NoError(t, Render(st, &buf))
	out := buf.String()
	require.Contains(t, out, `<count color="red">3</count>`)
	require.Contains(t, out, `<solution type="solution">`)
}

func TestRenderEscapesSpecialCharacters(t *testing.T) {
	st := store.New()
	st.AppendPuzzle(store.PuzzleRecord{Title: st.InternText("A & B <tag>")})
	var buf bytes.Buffer
	require.NoError(t, Render(st, &buf))
	require.Contains(t, buf.String(), "A &amp; B &lt;tag&gt;")
}
