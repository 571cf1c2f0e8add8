// Package loader implements the recursive-descent consumer that turns an
// XML puzzleset document into a *store.Store. It sits directly on top of
// encoding/xml.Decoder: character and entity references are already
// resolved into xml.CharData by the time this package sees them, and
// document position is tracked from dec.InputOffset() through a
// diagnostics.LineIndex.
//
// The loader never fails a well-formed-but-invalid document itself.
// Structural and content problems are recorded onto a diagnostics.List as
// they are found and parsing continues on a best-effort basis. There are
// two exceptions: malformed XML (encoding/xml.Decoder returning an error,
// including running out of input mid-document), which is fatal and
// reported as diagnostics.ErrMalformedXML, and a document element other
// than <puzzleset>, which records unrecognized_element and stops with a
// diagnostics.ErrInvalidPBN error.
//
// Per puzzle, the loader assembles a parsed.Puzzle scratch value and hands
// it to internal/normalize, which either commits a store.PuzzleRecord or
// drops the puzzle after recording why.
package loader
