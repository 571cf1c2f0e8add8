package pbn_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkgrid/pbn"
	"github.com/inkgrid/pbn/diagnostics"
)

const smallSquare = `<puzzleset>
  <title>Small Square</title>
  <puzzle defaultcolor="red">
    <id>square</id>
    <color name="red" char="R">FF0000</color>
    <clues type="rows">
      <line><count>2</count></line>
      <line><count>2</count></line>
    </clues>
    <clues type="columns">
      <line><count>2</count></line>
      <line><count>2</count></line>
    </clues>
    <solution type="goal">
      <image>|RR||RR|</image>
    </solution>
    <solution type="saved" id="s1">
      <image>|??||??|</image>
    </solution>
  </puzzle>
</puzzleset>`

func TestParseAndAccessors(t *testing.T) {
	ps, diags, err := pbn.Parse([]byte(smallSquare))
	require.NoError(t, err)
	require.False(t, diags.Any())
	require.Equal(t, "Small Square", ps.Title())
	require.Equal(t, 1, ps.PuzzleCount())

	p := ps.Puzzle(0)
	require.Equal(t, "square", p.ID())
	require.Equal(t, 2, p.RowCount())
	require.Equal(t, 2, p.ColumnCount())
	require.Equal(t, 1, p.GoalCount())
	require.Equal(t, 1, p.SavedSolutionCount())

	goal := p.Goal(0)
	require.NotZero(t, goal.Get(0, 0))
}

func TestParseInvalidDocumentReturnsNilPuzzleSet(t *testing.T) {
	doc := `<puzzleset><puzzle><bogus/></puzzle></puzzleset>`
	ps, diags, err := pbn.Parse([]byte(doc))
	require.Error(t, err)
	require.True(t, errors.Is(err, diagnostics.ErrInvalidPBN))
	require.True(t, diags.Any())
	require.Nil(t, ps)
}

func TestRenderRoundTripsGoalImage(t *testing.T) {
	ps, _, err := pbn.Parse([]byte(smallSquare))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pbn.Render(ps, &buf))
	require.Contains(t, buf.String(), "|RR|\n|RR|")

	ps2, diags2, err2 := pbn.Parse(buf.Bytes())
	require.NoError(t, err2)
	require.False(t, diags2.Any())
	require.Equal(t, ps.Puzzle(0).ID(), ps2.Puzzle(0).ID())
}

func TestGetOrCreateSavedSolutionIsLazyAndIdempotent(t *testing.T) {
	doc := `<puzzleset><puzzle><solution type="goal"><image>|X|</image></solution></puzzle></puzzleset>`
	ps, diags, err := pbn.Parse([]byte(doc))
	require.NoError(t, err)
	require.False(t, diags.Any())

	p := ps.Puzzle(0)
	require.Equal(t, 0, p.SavedSolutionCount())
	idx := p.GetOrCreateSavedSolution()
	require.Equal(t, 0, idx)
	require.Equal(t, 1, p.SavedSolutionCount())

	img := p.SavedSolutionImage(0)
	full := img.Get(0, 0)
	require.NotZero(t, full)

	img.Set(0, 0, 1)
	require.Equal(t, uint32(1), img.Get(0, 0))

	idx2 := p.GetOrCreateSavedSolution()
	require.Equal(t, 0, idx2)
	require.Equal(t, 1, p.SavedSolutionCount())
}
