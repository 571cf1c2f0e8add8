// Package store is the backing arena for a parsed puzzle set: pooled
// strings, flat record arenas, and a packed word arena for bitsets and
// clue runs. Every cross-entity reference in and above this package is a
// plain integer index into one of these arenas — there are no pointers
// between entities, so a *Store (and everything built on top of it) is
// trivially copyable-by-value-of-slices and needs no explicit teardown.
//
// Three arenas, per the data model this package backs:
//
//   - bytes: NUL-terminated pooled strings, addressed by StringIndex.
//   - words: packed uint32 storage for variable-length runs of
//     single-word elements (cell bitsets, encoded clues, note string
//     indices), addressed by DataIndex and always laid out as
//     [length][elements...].
//   - Colors / ClueLines / Solutions: flat arenas of small fixed-shape
//     records, referenced by a puzzle as a contiguous (start, length)
//     run rather than word-packed — packing a Clue's 5-bit color and
//     27-bit count into one word earns its keep (see clue.go); packing a
//     multi-field record like Color or Solution into raw words would
//     only add unpacking code with no benefit here, so those stay as Go
//     structs in a typed arena instead. Puzzles themselves live in
//     their own flat arena, index 0 reserved for the synthetic root.
package store
