package pbn

import "github.com/inkgrid/pbn/internal/store"

// Puzzle is one puzzle within a PuzzleSet.
type Puzzle struct {
	ps  *PuzzleSet
	idx int32
}

func (p *Puzzle) rec() *store.PuzzleRecord {
	return &p.ps.st.Puzzles[p.idx]
}

// inherited returns own if it is non-empty, otherwise the containing
// set's value for the same field — source, author, authorid, and
// copyright fall back to the document's own metadata when a puzzle
// doesn't set them itself. id, title, and description never fall back.
func inherited(ps *PuzzleSet, own store.StringIndex, fromRoot func(*PuzzleSet) string) string {
	if own != 0 {
		return ps.st.ResolveString(own)
	}
	return fromRoot(ps)
}

func (p *Puzzle) Source() string {
	return inherited(p.ps, p.rec().Source, (*PuzzleSet).Source)
}

func (p *Puzzle) ID() string { return p.ps.st.ResolveString(p.rec().ID) }

func (p *Puzzle) Title() string { return p.ps.st.ResolveString(p.rec().Title) }

func (p *Puzzle) Author() string {
	return inherited(p.ps, p.rec().Author, (*PuzzleSet).Author)
}

func (p *Puzzle) AuthorID() string {
	return inherited(p.ps, p.rec().AuthorID, (*PuzzleSet).AuthorID)
}

func (p *Puzzle) Copyright() string {
	return inherited(p.ps, p.rec().Copyright, (*PuzzleSet).Copyright)
}

func (p *Puzzle) Description() string { return p.ps.st.ResolveString(p.rec().Description) }

// ColorCount reports the puzzle's palette size, including the mandatory
// background and default colors.
func (p *Puzzle) ColorCount() int { return int(p.rec().ColorsLen) }

// Color returns the i-th palette entry. Index 0 is always the background
// color and index 1 the default color.
func (p *Puzzle) Color(i int) Color {
	r := p.ps.st.Colors[int(p.rec().ColorsStart)+i]
	return Color{Name: p.ps.st.ResolveString(r.Name), Char: r.Char, R: r.R, G: r.G, B: r.B}
}

func (p *Puzzle) RowCount() int    { return int(p.rec().Rows) }
func (p *Puzzle) ColumnCount() int { return int(p.rec().Columns) }

func (p *Puzzle) clueLine(runStart int32, i int) store.ClueLineRecord {
	return p.ps.st.ClueLines[int(runStart)+i]
}

func (p *Puzzle) clueLineCount(runStart, runLen int32, i int) int {
	line := p.clueLine(runStart, i)
	return p.ps.st.SliceLen(line.Clues)
}

func (p *Puzzle) clueAt(runStart int32, i, k int) Clue {
	line := p.clueLine(runStart, i)
	c := store.DecodeClue(p.ps.st.SliceWord(line.Clues, k))
	return Clue{Color: int(c.Color), Count: c.Count}
}

func (p *Puzzle) RowClueCount(i int) int {
	return p.clueLineCount(p.rec().RowCluesStart, p.rec().RowCluesLen, i)
}

func (p *Puzzle) RowClue(i, k int) Clue {
	return p.clueAt(p.rec().RowCluesStart, i, k)
}

func (p *Puzzle) ColumnClueCount(j int) int {
	return p.clueLineCount(p.rec().ColCluesStart, p.rec().ColCluesLen, j)
}

func (p *Puzzle) ColumnClue(j, k int) Clue {
	return p.clueAt(p.rec().ColCluesStart, j, k)
}

func (p *Puzzle) solutionImage(start, length int32, i int) Image {
	rec := p.ps.st.Solutions[int(start)+i]
	return Image{st: p.ps.st, puzzleIdx: p.idx, data: rec.Image, rows: p.rec().Rows, cols: p.rec().Columns}
}

func (p *Puzzle) GoalCount() int { return int(p.rec().GoalsLen) }
func (p *Puzzle) Goal(i int) Image {
	return p.solutionImage(p.rec().GoalsStart, p.rec().GoalsLen, i)
}

func (p *Puzzle) SolvedSolutionCount() int { return int(p.rec().SolvedLen) }
func (p *Puzzle) SolvedSolution(i int) Image {
	return p.solutionImage(p.rec().SolvedStart, p.rec().SolvedLen, i)
}

func (p *Puzzle) SavedSolutionCount() int { return int(p.rec().SavedLen) }
func (p *Puzzle) SavedSolutionImage(i int) Image {
	return p.solutionImage(p.rec().SavedStart, p.rec().SavedLen, i)
}

// GetOrCreateSavedSolution returns the index of the puzzle's first saved
// solution, lazily appending one filled with the all-candidates "unknown"
// mask if none exists yet.
func (p *Puzzle) GetOrCreateSavedSolution() int {
	rec := p.rec()
	if rec.SavedLen > 0 {
		return 0
	}
	total := int(rec.Rows) * int(rec.Columns)
	mask := fullCellMask(int(rec.ColorsLen))
	cells := make([]uint32, total)
	for i := range cells {
		cells[i] = mask
	}
	sol := store.SolutionRecord{Image: p.ps.st.PushWords(cells)}
	start, length := p.ps.st.AppendSolutions([]store.SolutionRecord{sol})
	rec.SavedStart, rec.SavedLen = start, length
	return 0
}

func fullCellMask(n int) uint32 {
	switch {
	case n <= 0:
		return 0
	case n >= 32:
		return 0xFFFFFFFF
	default:
		return uint32(1)<<uint(n) - 1
	}
}
