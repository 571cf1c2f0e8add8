package store

// ColorRecord is a single palette entry. Referenced by a puzzle as a
// (start, length) run into Store.Colors — never individually, since a
// puzzle's whole palette is always read or replaced as a unit during
// normalization.
type ColorRecord struct {
	Name    StringIndex
	Char    byte
	R, G, B byte
}

// ClueLineRecord is one row's or one column's ordered run of clues. Clues
// is a DataIndex into the word arena holding EncodeClue-packed words.
type ClueLineRecord struct {
	Clues DataIndex
}

// SolutionRecord is one goal, solved-solution, or saved-solution image.
// Image is a DataIndex into the word arena holding one Cell bitset per
// cell, row-major (rows*columns words). Notes is a DataIndex into the
// word arena holding StringIndex values.
type SolutionRecord struct {
	ID    StringIndex
	Image DataIndex
	Notes DataIndex
}

// PuzzleRecord is one puzzle, or (at index 0) the synthetic root carrying
// only set-wide metadata. Colors/RowClues/ColumnClues/Goals/Solved/Saved
// are each a (start, length) run into the corresponding shared arena.
type PuzzleRecord struct {
	Source, ID, Title, Author, AuthorID, Copyright, Description StringIndex

	Rows, Columns int32

	ColorsStart, ColorsLen     int32
	RowCluesStart, RowCluesLen int32
	ColCluesStart, ColCluesLen int32
	GoalsStart, GoalsLen       int32
	SolvedStart, SolvedLen     int32
	SavedStart, SavedLen       int32

	Notes DataIndex
}
