package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkgrid/pbn/diagnostics"
)

const minimalDoc = `<puzzleset>
  <title>Test Set</title>
  <puzzle>
    <id>p1</id>
    <clues type="rows">
      <line><count color="black">1</count></line>
      <line><count color="black">1</count></line>
    </clues>
    <clues type="columns">
      <line><count color="black">1</count></line>
      <line><count color="black">1</count></line>
    </clues>
    <solution type="goal">
      <image>|X.||.X|</image>
    </solution>
  </puzzle>
</puzzleset>`

func TestParseMinimalDocument(t *testing.T) {
	diags := &diagnostics.List{}
	st, err := Parse([]byte(minimalDoc), diags)
	require.NoError(t, err)
	require.False(t, diags.Any(), "unexpected diagnostics: %v", diags.All())
	require.Len(t, st.Puzzles, 2)

	root := st.Puzzles[0]
	require.Equal(t, "Test Set", st.ResolveString(root.Title))

	p := st.Puzzles[1]
	require.Equal(t, "p1", st.ResolveString(p.ID))
	require.EqualValues(t, 2, p.Rows)
	require.EqualValues(t, 2, p.Columns)
	require.EqualValues(t, 2, p.RowCluesLen)
	require.EqualValues(t, 2, p.ColCluesLen)
	require.EqualValues(t, 1, p.GoalsLen)
}

func TestParseUnrecognizedElementIsRecordedAndParsingContinues(t *testing.T) {
	doc := `<puzzleset>
  <bogus/>
  <puzzle>
    <solution type="goal"><image>|X|</image></solution>
  </puzzle>
</puzzleset>`
	diags := &diagnostics.List{}
	st, err := Parse([]byte(doc), diags)
	require.NoError(t, err)
	require.True(t, diags.Any())
	require.Equal(t, diagnostics.UnrecognizedElement, diags.All()[0].Kind)
	require.Len(t, st.Puzzles, 2)
}

func TestParseMalformedXMLIsFatal(t *testing.T) {
	diags := &diagnostics.List{}
	_, err := Parse([]byte("<puzzleset><puzzle></puzzleset>"), diags)
	require.Error(t, err)
	require.ErrorIs(t, err, diagnostics.ErrMalformedXML)
}

func TestParseWrongDocumentElementIsInvalid(t *testing.T) {
	diags := &diagnostics.List{}
	_, err := Parse([]byte("<notapuzzleset/>"), diags)
	require.Error(t, err)
	require.ErrorIs(t, err, diagnostics.ErrInvalidPBN)
}

func TestParseSavedSolutionWildcardCell(t *testing.T) {
	doc := `<puzzleset>
  <puzzle>
    <solution type="goal"><image>|X|</image></solution>
    <solution type="saved"><image>|?|</image></solution>
  </puzzle>
</puzzleset>`
	diags := &diagnostics.List{}
	st, err := Parse([]byte(doc), diags)
	require.NoError(t, err)
	require.False(t, diags.Any())
	p := st.Puzzles[1]
	require.EqualValues(t, 1, p.SavedLen)
	sol := st.Solutions[p.SavedStart]
	mask := st.SliceWord(sol.Image, 0)
	require.Equal(t, fullMaskFor(int(p.ColorsLen)), mask)
}

func TestParseBackslashColorCharAsSingleCellGlyph(t *testing.T) {
	doc := `<puzzleset>
  <puzzle>
    <color name="odd" char="\">FF00FF</color>
    <solution type="goal"><image>|\.|</image></solution>
  </puzzle>
</puzzleset>`
	diags := &diagnostics.List{}
	st, err := Parse([]byte(doc), diags)
	require.NoError(t, err)
	require.False(t, diags.Any(), "unexpected diagnostics: %v", diags.All())
	p := st.Puzzles[1]
	require.EqualValues(t, 1, p.GoalsLen)
}

func fullMaskFor(n int) uint32 {
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return uint32(1)<<uint(n) - 1
}
