// Package normalize turns a parsed.Puzzle scratch value into a committed
// store.PuzzleRecord: completing the palette with the required black and
// white entries, assigning glyphs to colors that didn't specify one,
// moving the background and default colors to their reserved indices,
// resolving clue color references against the finished palette, settling
// on the puzzle's dimensions, encoding every image's cells as bitsets,
// and deriving row/column clues from the goal image when the document
// didn't supply them explicitly.
//
// NormalizePuzzle reports ok=false when the puzzle cannot be committed at
// all — undefined background/default color, too many colors, or no goal
// image to determine dimensions from — after recording the diagnostic
// that explains why. A puzzle-level failure never touches its siblings:
// the loader keeps parsing the rest of the document either way.
package normalize
