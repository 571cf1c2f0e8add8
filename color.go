package pbn

// Color is one palette entry. Char is the glyph used for this color in
// image text; index 0 in a puzzle's palette is always the background
// color, index 1 the default color used by clue counts that omit an
// explicit color.
type Color struct {
	Name    string
	Char    byte
	R, G, B byte
}
