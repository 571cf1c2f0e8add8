// Package pbn parses, validates, and re-serializes puzzleset XML
// documents: sets of nonogram (paint-by-number) puzzles made of a
// palette, row/column clues, a goal image, and any number of solved or
// in-progress saved solutions.
//
// Parse and ParseStream read a document into a *PuzzleSet plus a
// diagnostics.List describing every problem found along the way. Any
// diagnostic at all means the document as a whole is invalid: Parse
// returns a nil *PuzzleSet and a non-nil error wrapping
// diagnostics.ErrInvalidPBN in that case, discarding the partially-built
// result — the full diagnostics.List is still returned so a caller can
// report exactly what was wrong.
//
// The library is synchronous and holds no internal locks: a *PuzzleSet
// and everything reachable from it must not be used from more than one
// goroutine at a time without external synchronization.
package pbn
