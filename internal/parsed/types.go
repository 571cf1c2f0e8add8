package parsed

// SolutionKind distinguishes the three solution roles a puzzle can carry.
type SolutionKind int

const (
	Goal SolutionKind = iota
	Solved
	Saved
)

// Color is one <color> element, before palette completion, glyph
// assignment, or reserved-index sorting.
type Color struct {
	Name    string
	HasName bool
	Char    byte
	HasChar bool
	R, G, B byte
}

// ClueEntry is one <count> element. Valid is false when the text was
// missing, zero, non-numeric, or too large to fit 27 bits — the
// diagnostic for that has already been recorded by the loader.
type ClueEntry struct {
	ColorName string
	HasColor  bool
	Count     uint32
	Valid     bool
}

// ClueLine is one <line> element: an ordered list of counts.
type ClueLine struct {
	Entries []ClueEntry
}

// ClueBlock is one <clues type="rows"|"columns"> element. Present
// distinguishes "the puzzle had no such block" from "the block was
// present but empty".
type ClueBlock struct {
	Present bool
	Lines   []ClueLine
}

// CellSpec is a single image cell as written: a bracketed group of
// glyphs, a single glyph, or the saved-solution wildcard '?'.
type CellSpec struct {
	Wild   bool
	Glyphs []byte
}

// ImageSpec is one <image> element's scanned grammar. Valid is false when
// the text violated the row/cell grammar; image_invalid has already been
// recorded by the loader in that case and Cells is left empty.
type ImageSpec struct {
	Rows, Cols int
	Cells      []CellSpec
	Valid      bool
}

// Solution is one <solution> element.
type Solution struct {
	Kind     SolutionKind
	ID       string
	HasImage bool
	Image    ImageSpec
	Notes    []string
}

// Puzzle is one <puzzle> element in its raw, pre-normalization shape.
type Puzzle struct {
	TypeAttrPresent bool
	TypeAttrValue   string

	DefaultColorName    string
	BackgroundColorName string

	Source, ID, Title, Author, AuthorID, Copyright, Description string

	Colors      []Color
	RowClues    ClueBlock
	ColumnClues ClueBlock
	Solutions   []Solution
	Notes       []string
}
