package pbn

// Clue is one run-length entry in a row or column clue line: Count
// consecutive cells of the palette color at index Color.
type Clue struct {
	Color int
	Count uint32
}
